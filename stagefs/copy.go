package stagefs

import (
	"fmt"
	"io"
	"os"
)

// CopyFile copies src byte-for-byte to dst, keeping src's permission bits.
// An existing dst is truncated. The destination directory must already
// exist, see [Layout.Provide].
func CopyFile(dst, src string) error {
	sstat, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stage %s: %w", dst, err)
	}
	w, err := os.OpenFile(dst,
		os.O_CREATE|os.O_TRUNC|os.O_WRONLY,
		sstat.Mode().Perm(),
	)
	if err != nil {
		return fmt.Errorf("stage %s: %w", dst, err)
	}
	defer w.Close()
	r, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("stage %s: %w", dst, err)
	}
	defer r.Close()
	if _, err = io.Copy(w, r); err != nil {
		return fmt.Errorf("stage %s: %w", dst, err)
	}
	return nil
}
