package provision

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"setup-devenv/internal/logger"
	"setup-devenv/internal/state"
)

// InstallFonts downloads each configured font archive and extracts it into
// the user font directory. There is no existence guard: re-runs re-download
// and re-extract, overwriting the previously installed files. The downloaded
// archive is deleted after a successful extraction; on failure it is left in
// place for inspection.
func (p *Provisioner) InstallFonts() error {
	if err := os.MkdirAll(p.Paths.FontsDir, 0755); err != nil {
		return fmt.Errorf("failed to create font directory %s: %w", p.Paths.FontsDir, err)
	}

	for _, font := range p.Config.Fonts {
		logger.Info("[INFO] Installing font %s...\n", font.Name)

		archive := filepath.Join(os.TempDir(), path.Base(font.URL))
		if err := downloadFile(font.URL, archive); err != nil {
			return fmt.Errorf("font download failed for %s: %w", font.Name, err)
		}

		files, err := extractArchive(archive, p.Paths.FontsDir)
		if err != nil {
			return fmt.Errorf("font extraction failed for %s: %w", font.Name, err)
		}
		if err := os.Remove(archive); err != nil {
			logger.Warn("[WARN] Failed to remove downloaded archive %s: %v\n", archive, err)
		}

		p.State.Fonts[font.Name] = state.FontState{
			URL:   font.URL,
			Files: files,
		}
		logger.Info("[INFO] Installed %d font files for %s.\n", len(files), font.Name)
	}

	p.State.MarkStep("fonts")
	return nil
}

// downloadFile downloads the content at url and saves it to destPath.
func downloadFile(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %s failed: HTTP status %d", url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close destination file: %v\n", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response to file: %w", err)
	}

	logger.Debug("[DEBUG] Downloaded %s to %s\n", url, destPath)
	return nil
}
