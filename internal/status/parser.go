// Package status decodes the null-terminated record stream produced by
// git status --porcelain=v2 -z. See git-status(1), "Porcelain Format Version 2".
package status

import (
	"fmt"
)

// Result holds the two mappings a parse produces. Later records for the same
// path overwrite earlier ones, matching git's emission order.
type Result struct {
	Codes   map[string]string // path -> XY status pair
	Renames map[string]string // new path -> old path
}

// MalformedRecordError reports that no record shape matched at Offset.
// It signals corrupted input or an unsupported porcelain version; the parse
// result is discarded entirely.
type MalformedRecordError struct {
	Offset int
	Detail string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed status record at offset %d: %s", e.Offset, e.Detail)
}

// Parse scans buf in a single pass and returns the path mappings.
// An empty buffer yields empty mappings.
func Parse(buf []byte) (*Result, error) {
	res := &Result{
		Codes:   make(map[string]string),
		Renames: make(map[string]string),
	}
	s := &scanner{buf: buf}
	for !s.done() {
		if err := s.record(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

type scanner struct {
	buf []byte
	pos int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.buf)
}

func (s *scanner) fail(offset int, format string, args ...any) error {
	return &MalformedRecordError{Offset: offset, Detail: fmt.Sprintf(format, args...)}
}

// field consumes bytes up to the next space and the space itself.
// Fields never contain NUL; hitting one (or the end of the buffer) is a
// grammar violation.
func (s *scanner) field() (string, error) {
	start := s.pos
	for i := s.pos; i < len(s.buf); i++ {
		switch s.buf[i] {
		case ' ':
			s.pos = i + 1
			return string(s.buf[start:i]), nil
		case 0:
			return "", s.fail(start, "unterminated field")
		}
	}
	return "", s.fail(start, "unexpected end of input")
}

// path consumes bytes up to the next NUL and the NUL itself.
func (s *scanner) path() (string, error) {
	start := s.pos
	for i := s.pos; i < len(s.buf); i++ {
		if s.buf[i] == 0 {
			if i == start {
				return "", s.fail(start, "empty path")
			}
			s.pos = i + 1
			return string(s.buf[start:i]), nil
		}
	}
	return "", s.fail(start, "missing record terminator")
}

// record matches exactly one of the five record shapes:
//
//	1 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <path>NUL
//	2 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <X><score> <path>NUL<origPath>NUL
//	u <XY> <sub> <m1> <m2> <m3> <mW> <h1> <h2> <h3> <path>NUL
//	? <path>NUL
//	! <path>NUL
func (s *scanner) record(res *Result) error {
	start := s.pos
	tag, err := s.field()
	if err != nil {
		return err
	}

	switch tag {
	case "1":
		xy, err := s.header(start, 3, 2)
		if err != nil {
			return err
		}
		p, err := s.path()
		if err != nil {
			return err
		}
		res.Codes[p] = xy

	case "2":
		xy, err := s.header(start, 3, 2)
		if err != nil {
			return err
		}
		sim, err := s.field()
		if err != nil {
			return err
		}
		if !isSimilarity(sim) {
			return s.fail(start, "invalid rename similarity %q", sim)
		}
		newPath, err := s.path()
		if err != nil {
			return err
		}
		oldPath, err := s.path()
		if err != nil {
			return err
		}
		res.Codes[newPath] = xy
		res.Renames[newPath] = oldPath

	case "u":
		xy, err := s.header(start, 4, 3)
		if err != nil {
			return err
		}
		p, err := s.path()
		if err != nil {
			return err
		}
		res.Codes[p] = xy

	case "?":
		p, err := s.path()
		if err != nil {
			return err
		}
		res.Codes[p] = "??"

	case "!":
		p, err := s.path()
		if err != nil {
			return err
		}
		res.Codes[p] = "!!"

	default:
		return s.fail(start, "unknown record discriminator %q", tag)
	}

	return nil
}

// header consumes the fixed-format fields common to changed entries: the XY
// status pair, the submodule marker, then modes octal mode fields and hashes
// object ids. The mode and id values are validated positionally and dropped.
func (s *scanner) header(start, modes, hashes int) (string, error) {
	xy, err := s.field()
	if err != nil {
		return "", err
	}
	if !isStatusPair(xy) {
		return "", s.fail(start, "invalid status pair %q", xy)
	}
	sub, err := s.field()
	if err != nil {
		return "", err
	}
	if !isSubmoduleState(sub) {
		return "", s.fail(start, "invalid submodule state %q", sub)
	}
	for i := 0; i < modes; i++ {
		mode, err := s.field()
		if err != nil {
			return "", err
		}
		if !isOctalMode(mode) {
			return "", s.fail(start, "invalid file mode %q", mode)
		}
	}
	for i := 0; i < hashes; i++ {
		oid, err := s.field()
		if err != nil {
			return "", err
		}
		if !isHex(oid) {
			return "", s.fail(start, "invalid object id %q", oid)
		}
	}
	return xy, nil
}

func isStatusPair(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		switch s[i] {
		case 'M', 'T', 'A', 'D', 'R', 'C', 'U', '.':
		default:
			return false
		}
	}
	return true
}

// isSubmoduleState matches "N..." for ordinary paths or "S<c><m><u>" for
// submodules, where each position is the given letter or ".".
func isSubmoduleState(s string) bool {
	if len(s) != 4 {
		return false
	}
	if s == "N..." {
		return true
	}
	return s[0] == 'S' &&
		(s[1] == 'C' || s[1] == '.') &&
		(s[2] == 'M' || s[2] == '.') &&
		(s[3] == 'U' || s[3] == '.')
}

func isOctalMode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}
	return true
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// isSimilarity matches the rename/copy score tag, e.g. "R100" or "C75".
func isSimilarity(s string) bool {
	if len(s) < 2 || len(s) > 4 {
		return false
	}
	if s[0] != 'R' && s[0] != 'C' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
