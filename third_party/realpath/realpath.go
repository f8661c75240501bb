// This software is distributed under the MIT License.
//
// You should have received a copy of the MIT License along with this program.
// If not, see <https://opensource.org/licenses/MIT>

package realpath

import (
	"bytes"
	"errors"
	"os"
	"path"
)

const (
	pathSeparator = '/'

	// maxLinks is the number of symlinks followed before giving up.
	maxLinks = 16
)

var (
	// ErrTooManyLinks is returned when symlink resolution loops.
	ErrTooManyLinks = errors.New("too many levels of symbolic links")
)

// OS is the subset of an operating system needed to canonicalize a path.
type OS interface {
	Getwd() (dir string, err error)
	Lstat(name string) (os.FileInfo, error)
	Readlink(name string) (string, error)
}

// Realpath returns the canonical absolute path of fpath, resolving ".", ".."
// and symbolic links. Every component must exist.
func Realpath(os OS, fpath string) (string, error) {
	if len(fpath) == 0 {
		fpath = "."
	}

	if !path.IsAbs(fpath) {
		pwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		fpath = path.Join(pwd, fpath)
	}

	p := []byte(fpath)
	nlinks := 0
	start := 1
	prev := 1
	for start < len(p) {
		c := nextComponent(p, start)
		cur := c[start:]

		switch {
		case len(cur) == 0:
			copy(p[start:], p[start+1:])
			p = p[0 : len(p)-1]

		case len(cur) == 1 && cur[0] == '.':
			if start+2 < len(p) {
				copy(p[start:], p[start+2:])
			}
			p = p[0 : len(p)-2]

		case len(cur) == 2 && cur[0] == '.' && cur[1] == '.':
			copy(p[prev:], p[start+2:])
			p = p[0 : len(p)+prev-(start+2)]
			prev = 1
			start = 1

		default:
			fi, err := os.Lstat(string(c))
			if err != nil {
				return "", err
			}
			if !isSymlink(fi) {
				prev = start
				start = len(c) + 1
				continue
			}

			nlinks++
			if nlinks > maxLinks {
				return "", ErrTooManyLinks
			}

			link, err := os.Readlink(string(c))
			if err != nil {
				return "", err
			}
			after := string(p[len(c):])
			p = switchSymlinkCom(p, start, link, after)
			prev = 1
			start = 1
		}
	}

	for len(p) > 1 && p[len(p)-1] == pathSeparator {
		p = p[0 : len(p)-1]
	}
	if len(p) == 0 {
		return string(pathSeparator), nil
	}
	return string(p), nil
}

func isSymlink(fi os.FileInfo) bool {
	return fi.Mode()&os.ModeSymlink == os.ModeSymlink
}

// switchSymlinkCom replaces a symlink component with its target.
func switchSymlinkCom(origPath []byte, start int, link, after string) []byte {
	if len(link) > 0 && link[0] == pathSeparator {
		return []byte(path.Join(link, after))
	}

	return []byte(path.Join(string(origPath[0:start]), link, after))
}

func nextComponent(p []byte, start int) []byte {
	v := bytes.IndexByte(p[start:], pathSeparator)
	if v < 0 {
		return p
	}
	return p[0 : start+v]
}
