package streamv1

import (
	"strconv"
	"strings"

	"github.com/muhammadchandra19/marketfeed/pkg/errors"
)

// ID is a stream entry id, <ms>-<seq>. IDs are compared numerically, never as strings.
type ID struct {
	Ms  uint64
	Seq uint64
}

// Zero is the cursor of an instrument that has read nothing yet.
var Zero = ID{}

// ParseID parses "<ms>-<seq>". A bare "<ms>" is accepted with sequence zero.
func ParseID(raw string) (ID, error) {
	ms, seq, found := strings.Cut(raw, "-")

	msVal, err := strconv.ParseUint(ms, 10, 64)
	if err != nil {
		return ID{}, errors.WrapDetails(err, "invalid stream id "+raw, string(errors.StreamIDParseError), "id")
	}
	if !found {
		return ID{Ms: msVal}, nil
	}

	seqVal, err := strconv.ParseUint(seq, 10, 64)
	if err != nil {
		return ID{}, errors.WrapDetails(err, "invalid stream id "+raw, string(errors.StreamIDParseError), "id")
	}
	return ID{Ms: msVal, Seq: seqVal}, nil
}

// MustParseID panics on a malformed id. Meant for tests and constants.
func MustParseID(raw string) ID {
	id, err := ParseID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID) String() string {
	return strconv.FormatUint(id.Ms, 10) + "-" + strconv.FormatUint(id.Seq, 10)
}

// Less reports whether id sorts before other.
func (id ID) Less(other ID) bool {
	if id.Ms != other.Ms {
		return id.Ms < other.Ms
	}
	return id.Seq < other.Seq
}

// IsZero reports whether nothing has been read yet.
func (id ID) IsZero() bool {
	return id == Zero
}

// Max returns the later of the two ids.
func Max(a, b ID) ID {
	if a.Less(b) {
		return b
	}
	return a
}
