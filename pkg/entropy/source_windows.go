//go:build windows

package entropy

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Windows has no random device file; a provider failure is final.
const defaultDevice = ""

// maxRequest caps a single CryptGenRandom call; Fill loops for the rest.
const maxRequest = 1 << 30

// platformRead acquires a CryptoAPI provider for the duration of one request.
// The handle is released whether or not generation succeeds.
func platformRead(p []byte) (n int, err error) {
	if len(p) > maxRequest {
		p = p[:maxRequest]
	}

	var prov windows.Handle
	if err := windows.CryptAcquireContext(&prov, nil, nil, windows.PROV_RSA_FULL,
		windows.CRYPT_VERIFYCONTEXT|windows.CRYPT_SILENT); err != nil {
		return 0, fmt.Errorf("acquire crypto provider: %w", err)
	}
	defer func() {
		if rerr := windows.CryptReleaseContext(prov, 0); rerr != nil && err == nil {
			n, err = 0, fmt.Errorf("release crypto provider: %w", rerr)
		}
	}()

	if err := windows.CryptGenRandom(prov, uint32(len(p)), &p[0]); err != nil {
		return 0, fmt.Errorf("generate random: %w", err)
	}
	return len(p), nil
}
