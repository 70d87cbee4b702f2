package sweeper

import "github.com/kgossett/asset-sweeper/pkg/scanner"

// Scan analyzes the project at root and returns the unused asset report.
func (s *realAssetSweeper) Scan(root string) (*scanner.Report, error) {
	s.VerbosePrint("Scanning project: %s", root)

	cfg, err := s.getConfig()
	if err != nil {
		return nil, err
	}

	return s.getScanner(cfg).Scan(root)
}
