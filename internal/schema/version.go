package schema

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SchemaVersion is the current document schema version. Documents may
// declare a top-level "version" to state which schema they were written for.
const SchemaVersion = "1.0.0"

// IsCompatible checks if a document version is compatible with SchemaVersion
// using a caret constraint: any 1.x document is accepted.
func IsCompatible(docVersion string) (bool, error) {
	constraint, err := semver.NewConstraint("^" + SchemaVersion)
	if err != nil {
		return false, fmt.Errorf("invalid schema version: %w", err)
	}

	v, err := semver.NewVersion(docVersion)
	if err != nil {
		return false, fmt.Errorf("invalid document version %q: %w", docVersion, err)
	}

	return constraint.Check(v), nil
}
