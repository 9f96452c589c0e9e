package project

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// markers identify a project root, checked in registration order.
var markers = []string{".git", ".hg", ".svn"}

// Root walks upward from path through its ancestors and returns the
// first directory containing a version-control marker, or "" when the
// filesystem root is reached without a match.
func Root(path string) string {
	start := path
	info, err := os.Stat(start)
	if err != nil {
		return ""
	}
	if !info.IsDir() {
		start = filepath.Dir(start)
	}
	for {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(start, marker)); err == nil {
				return start
			}
		}
		parent := filepath.Dir(start)
		if parent == start {
			return ""
		}
		start = parent
	}
}

// Branch returns the checked-out git branch for the repository
// containing path, or "" when path is not inside a git repository.
func Branch(path string) string {
	root := Root(path)
	if root == "" {
		return ""
	}
	gitDir, err := resolveGitDir(root)
	if err != nil {
		return ""
	}
	branch, err := readHead(gitDir)
	if err != nil {
		return ""
	}
	return branch
}

// resolveGitDir handles both real .git directories and worktree
// gitfiles containing a "gitdir:" pointer.
func resolveGitDir(root string) (string, error) {
	gitPath := filepath.Join(root, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return gitPath, nil
	}
	data, err := os.ReadFile(gitPath)
	if err != nil {
		return "", err
	}
	line := strings.TrimSpace(string(data))
	const prefix = "gitdir:"
	if !strings.HasPrefix(line, prefix) {
		return "", os.ErrNotExist
	}
	dir := strings.TrimSpace(strings.TrimPrefix(line, prefix))
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return dir, nil
}

func readHead(gitDir string) (string, error) {
	f, err := os.Open(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", os.ErrInvalid
	}
	line := strings.TrimSpace(scanner.Text())
	const refPrefix = "ref:"
	if strings.HasPrefix(line, refPrefix) {
		ref := strings.TrimSpace(strings.TrimPrefix(line, refPrefix))
		return filepath.Base(ref), nil
	}
	if len(line) >= 7 {
		return "detached:" + line[:7], nil
	}
	return "detached", nil
}
