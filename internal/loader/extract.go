package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// copyBufferSize bounds memory use while copying and verifying, so
// arbitrarily large native binaries never get buffered whole.
const copyBufferSize = 32 * 1024

var (
	// ErrPermissionDenied means the extracted file could not be marked
	// readable, writable and executable.
	ErrPermissionDenied = errors.New("cannot set native library permissions")

	// ErrVerificationFailed means the extracted bytes differ from the
	// embedded resource.
	ErrVerificationFailed = errors.New("extracted native library does not match embedded resource")
)

// extract copies the embedded resource at resourcePath to a uniquely named
// file in targetDir and returns its full path. The name embeds the version
// and a fresh UUID so concurrent loaders sharing targetDir never collide.
// The file is registered for best-effort deletion at cleanup before the copy
// starts, so partial files from failed attempts are removed too.
func extract(res fs.FS, resourcePath, fileName, targetDir, prefix, version string) (string, error) {
	extractedName := fmt.Sprintf("%s-%s-%s-%s", prefix, version, uuid.NewString(), fileName)
	extractedPath := filepath.Join(targetDir, extractedName)

	if err := copyResource(res, resourcePath, extractedPath); err != nil {
		return "", err
	}

	// rwx for the owner, rx for everyone else, so the dynamic linker can
	// map the file.
	if err := os.Chmod(extractedPath, 0o755); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrPermissionDenied, extractedPath, err)
	}

	equal, err := verifyCopy(res, resourcePath, extractedPath)
	if err != nil {
		return "", fmt.Errorf("cannot verify extracted library %s: %w", extractedPath, err)
	}
	if !equal {
		return "", fmt.Errorf("%w: %s", ErrVerificationFailed, extractedPath)
	}

	return extractedPath, nil
}

// copyResource streams the embedded resource to dstPath with a bounded
// buffer. Both handles are closed on every exit path.
func copyResource(res fs.FS, resourcePath, dstPath string) (err error) {
	src, err := res.Open(resourcePath)
	if err != nil {
		return fmt.Errorf("cannot open embedded resource %s: %w", resourcePath, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", dstPath, err)
	}
	removeAtCleanup(dstPath)
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot finalize %s: %w", dstPath, cerr)
		}
	}()

	if _, err := io.CopyBuffer(dst, src, make([]byte, copyBufferSize)); err != nil {
		return fmt.Errorf("cannot copy %s to %s: %w", resourcePath, dstPath, err)
	}
	return nil
}

// verifyCopy re-opens both the embedded resource and the extracted file and
// compares them byte for byte.
func verifyCopy(res fs.FS, resourcePath, extractedPath string) (bool, error) {
	src, err := res.Open(resourcePath)
	if err != nil {
		return false, fmt.Errorf("cannot reopen embedded resource %s: %w", resourcePath, err)
	}
	defer src.Close()

	extracted, err := os.Open(extractedPath)
	if err != nil {
		return false, fmt.Errorf("cannot reopen %s: %w", extractedPath, err)
	}
	defer extracted.Close()

	return streamsEqual(src, extracted)
}

// streamsEqual reports whether two readers yield identical byte sequences.
// The verdict short-circuits on the first mismatch, but both readers are
// drained to exhaustion so the caller's close paths see fully consumed
// streams.
func streamsEqual(a, b io.Reader) (bool, error) {
	abuf := make([]byte, copyBufferSize)
	bbuf := make([]byte, copyBufferSize)
	equal := true

	for {
		an, aerr := io.ReadFull(a, abuf)
		bn, berr := io.ReadFull(b, bbuf)

		if equal && (an != bn || !bytes.Equal(abuf[:an], bbuf[:bn])) {
			equal = false
		}

		aDone := aerr == io.EOF || aerr == io.ErrUnexpectedEOF
		bDone := berr == io.EOF || berr == io.ErrUnexpectedEOF
		if aerr != nil && !aDone {
			return false, aerr
		}
		if berr != nil && !bDone {
			return false, berr
		}
		if aDone && bDone {
			return equal, nil
		}
		if aDone || bDone {
			// Lengths differ; drain whichever side still has data.
			rest := a
			if aDone {
				rest = b
			}
			if _, err := io.Copy(io.Discard, rest); err != nil {
				return false, err
			}
			return false, nil
		}
	}
}
