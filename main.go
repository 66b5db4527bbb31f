package main

import "memberadmin/cmd"

func main() {
	cmd.Execute()
}
