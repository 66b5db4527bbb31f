package ui

import (
	"memberadmin/internal/domain"
)

// membersLoadedMsg carries the result of the initial fetch
type membersLoadedMsg struct {
	records []domain.Member
	err     error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct {
	message string // only cleared if the status still shows this
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
