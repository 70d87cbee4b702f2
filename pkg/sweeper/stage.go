package sweeper

import (
	"fmt"
	"path/filepath"
	"strings"
)

// StageOpts contains optional parameters for Stage.
type StageOpts struct {
	// Force replaces an existing staging copy without confirmation.
	Force bool
}

// Stage copies the project at src into the staging directory and returns
// the staged path. An existing staging copy is replaced only after
// confirmation.
func (s *realAssetSweeper) Stage(src string, opts ...StageOpts) (string, error) {
	var options StageOpts
	if len(opts) > 0 {
		options = opts[0]
	}

	cfg, err := s.getConfig()
	if err != nil {
		return "", err
	}

	stagingDir, err := s.expandHome(cfg.StagingDir)
	if err != nil {
		return "", err
	}
	dst := filepath.Join(stagingDir, filepath.Base(filepath.Clean(src)))

	exists, err := s.deps.FS.Exists(dst)
	if err != nil {
		return "", err
	}
	if exists {
		if !options.Force {
			confirmed, confirmErr := s.deps.Prompt.PromptForConfirmation(
				fmt.Sprintf("Replace existing staging copy at %s?", dst), false)
			if confirmErr != nil {
				return "", confirmErr
			}
			if !confirmed {
				return "", fmt.Errorf("%w: %s", ErrStagingDeclined, dst)
			}
		}
		if removeErr := s.deps.FS.RemoveAll(dst); removeErr != nil {
			return "", fmt.Errorf("failed to remove existing staging copy: %w", removeErr)
		}
	}

	copied, err := s.getStager(cfg).Stage(src, dst)
	if err != nil {
		return "", err
	}
	s.VerbosePrint("Staged %d files into %s", copied, dst)
	return dst, nil
}

// expandHome resolves a leading ~/ against the user's home directory.
func (s *realAssetSweeper) expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := s.deps.FS.GetHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
