package sweeper

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/kgossett/asset-sweeper/pkg/prompt"
	"github.com/kgossett/asset-sweeper/pkg/scanner"
)

// CleanOpts contains optional parameters for Clean.
type CleanOpts struct {
	// Force deletes every unused file without review or confirmation.
	Force bool
}

// CleanResult summarizes a Clean run.
type CleanResult struct {
	Report   *scanner.Report
	Selected int
	Removed  int
	Failed   int
	Aborted  bool
}

// Clean scans the project at root and deletes the unused assets the user
// confirms. Deletion is sequential and best-effort: a file that fails to
// delete is logged and skipped.
func (s *realAssetSweeper) Clean(root string, opts ...CleanOpts) (*CleanResult, error) {
	var options CleanOpts
	if len(opts) > 0 {
		options = opts[0]
	}

	report, err := s.Scan(root)
	if err != nil {
		return nil, err
	}

	result := &CleanResult{Report: report}
	if len(report.Unused) == 0 {
		s.VerbosePrint("No unused assets found in %s", root)
		return result, nil
	}

	selected, aborted, err := s.selectForDeletion(root, report.Unused, options)
	if err != nil {
		return nil, err
	}
	result.Selected = len(selected)
	if aborted || len(selected) == 0 {
		result.Aborted = aborted
		return result, nil
	}

	for _, relPath := range selected {
		fullPath := filepath.Join(root, filepath.FromSlash(relPath))
		if removeErr := s.deps.FS.Remove(fullPath); removeErr != nil {
			s.VerbosePrint("Failed to delete %s: %v", relPath, removeErr)
			result.Failed++
			continue
		}
		result.Removed++
	}

	s.VerbosePrint("Deleted %d files, %d failed", result.Removed, result.Failed)
	return result, nil
}

// selectForDeletion narrows the unused list to the files the user wants
// gone. Force mode selects everything without interaction.
func (s *realAssetSweeper) selectForDeletion(
	root string, unused []string, options CleanOpts) (selected []string, aborted bool, err error) {
	if options.Force {
		return unused, false, nil
	}

	selected, err = s.deps.Prompt.PromptReviewFiles(unused)
	if err != nil {
		if errors.Is(err, prompt.ErrReviewAborted) {
			return nil, true, nil
		}
		return nil, false, err
	}
	if len(selected) == 0 {
		return nil, false, nil
	}

	confirmed, err := s.deps.Prompt.PromptForConfirmation(
		fmt.Sprintf("Delete %d files from %s?", len(selected), root), false)
	if err != nil {
		return nil, false, err
	}
	if !confirmed {
		return nil, true, nil
	}
	return selected, false, nil
}
