// Package transcript keeps a local record of assessments under the
// user's home directory, so results survive the interactive session
// even when the user never writes them back to JIRA.
package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// appDir is the per-user directory holding transcripts and shell history.
const appDir = ".bva"

// Recorder appends assessment results to a dated transcript file.
type Recorder struct {
	file *os.File
}

// Dir returns the per-user application directory, creating it if needed.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %v", err)
	}

	dir := filepath.Join(homeDir, appDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create application directory: %v", err)
	}

	return dir, nil
}

// HistoryFile returns the path used for interactive shell history. The
// parent directory is created; the file itself is managed by readline.
func HistoryFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}

// NewRecorder opens (or creates) today's transcript file for appending.
func NewRecorder() (*Recorder, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	transcriptsDir := filepath.Join(dir, "transcripts")
	if err := os.MkdirAll(transcriptsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create transcripts directory: %v", err)
	}

	name := fmt.Sprintf("assessments-%s.md", time.Now().Format("2006-01-02"))
	file, err := os.OpenFile(filepath.Join(transcriptsDir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript file: %v", err)
	}

	return &Recorder{file: file}, nil
}

// Record appends one assessment to the transcript.
func (r *Recorder) Record(issueKey string, assessment string) error {
	if r == nil || r.file == nil {
		return fmt.Errorf("transcript recorder not initialized")
	}

	entry := fmt.Sprintf("## %s (%s)\n\n%s\n\n", issueKey, time.Now().Format(time.RFC3339), assessment)
	if _, err := r.file.WriteString(entry); err != nil {
		return fmt.Errorf("failed to write transcript entry: %v", err)
	}

	return nil
}

// Close closes the underlying transcript file.
func (r *Recorder) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}
