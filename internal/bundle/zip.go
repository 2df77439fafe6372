package bundle

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// File permission of written archives and headers.
const filePerm = 0o644

// Writer writes manifests as zip archives.
type Writer struct {
	// Modified is the timestamp of generated entries. Zero means now.
	Modified time.Time
}

// WriteFile writes the archive to dest atomically.
func (w *Writer) WriteFile(dest string, m *Manifest) error {
	return writeAtomic(dest, func(out io.Writer) error {
		return w.Write(out, m)
	})
}

// WriteBytes writes data to dest atomically.
func WriteBytes(dest string, data []byte) error {
	return writeAtomic(dest, func(out io.Writer) error {
		_, err := out.Write(data)
		return err
	})
}

// writeAtomic stages the content in a temporary file in dest's directory
// and renames it over dest once fill succeeded.
func writeAtomic(dest string, fill func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = fill(tmp); err != nil {
		return err
	}

	if err = tmp.Chmod(filePerm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", tmp.Name(), err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err = os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("moving %s into place: %w", filepath.Base(dest), err)
	}

	return nil
}

// Write streams the archive to out.
func (w *Writer) Write(out io.Writer, m *Manifest) error {
	zw := zip.NewWriter(out)

	modified := w.Modified
	if modified.IsZero() {
		modified = time.Now()
	}

	for _, e := range m.entries {
		if err := writeEntry(zw, e, modified); err != nil {
			return fmt.Errorf("adding %s: %w", e.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finishing archive: %w", err)
	}

	return nil
}

func writeEntry(zw *zip.Writer, e Entry, modified time.Time) error {
	hdr := &zip.FileHeader{
		Name:     e.Name,
		Method:   zip.Deflate,
		Modified: modified,
	}

	if e.Generated() {
		hdr.SetMode(filePerm)

		dst, err := zw.CreateHeader(hdr)
		if err != nil {
			return err
		}

		_, err = dst.Write(e.Data)

		return err
	}

	file, err := os.Open(e.Path)
	if err != nil {
		return err
	}
	defer file.Close()

	if info, err := file.Stat(); err == nil {
		hdr.Modified = info.ModTime()
		hdr.SetMode(info.Mode())
	}

	dst, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}

	_, err = io.Copy(dst, file)

	return err
}
