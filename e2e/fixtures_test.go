//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory for the config, log and
// member fixtures
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteMembers writes n members to members.json in the workspace. Every
// fifth member is an admin.
func (tf *TUITestFramework) WriteMembers(n int) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	records := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		role := "member"
		if i%5 == 0 {
			role = "admin"
		}
		records = append(records, fmt.Sprintf(
			`{"id":"%d","name":"Member %02d","email":"m%02d@example.com","role":"%s"}`,
			i, i, i, role))
	}

	path := filepath.Join(tf.workspace, "members.json")
	if err := os.WriteFile(path, []byte("["+strings.Join(records, ",")+"]"), 0644); err != nil {
		return "", fmt.Errorf("failed to write members: %w", err)
	}
	return path, nil
}

// WriteConfig writes config.toml in the workspace. The pager is always off
// so popups render inside the captured output.
func (tf *TUITestFramework) WriteConfig(confirmBulkDelete bool) error {
	if tf.workspace == "" {
		return fmt.Errorf("workspace not created")
	}
	content := fmt.Sprintf(`version = 1

[ui]
confirm_bulk_delete = %t
show_id_column = true
use_pager = false
`, confirmBulkDelete)
	return os.WriteFile(filepath.Join(tf.workspace, "config.toml"), []byte(content), 0644)
}

// LogContents returns the application log
func (tf *TUITestFramework) LogContents() string {
	data, err := os.ReadFile(filepath.Join(tf.workspace, "memberadmin.log"))
	if err != nil {
		return ""
	}
	return string(data)
}

// startWithMembers creates a workspace with n members and starts the app
func startWithMembers(tf *TUITestFramework, n int, confirmBulkDelete bool) error {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return err
	}
	if err := tf.WriteConfig(confirmBulkDelete); err != nil {
		return err
	}
	source, err := tf.WriteMembers(n)
	if err != nil {
		return err
	}
	return tf.StartApp("--source", source)
}
