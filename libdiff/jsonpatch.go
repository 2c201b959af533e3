package libdiff

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/resval/debug"
	"github.com/signadot/resval/value"

	jsonpatch "github.com/evanphx/json-patch"
)

// JSONPatch applies an RFC 6902 patch to the document form of v, for
// example
//
//	[{"op": "add", "path": "/set/item/-", "value": "nvme"}]
//
// Ranges in the result are kept as the patch leaves them.
func JSONPatch(v *value.Value, patch []byte) (*value.Value, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding patch: %w", ErrDiff, err)
	}
	return patchDoc(v, "json-patch", ops.Apply)
}

// MergePatch applies an RFC 7386 merge patch to the document form of v.
func MergePatch(v *value.Value, patch []byte) (*value.Value, error) {
	return patchDoc(v, "merge-patch", func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, patch)
	})
}

func patchDoc(v *value.Value, name string, apply func([]byte) ([]byte, error)) (*value.Value, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out, err := apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDiff, name, err)
	}
	if debug.Patch() {
		debug.Logf("%s %s -> %s\n", name, d, out)
	}
	res := &value.Value{}
	if err := json.Unmarshal(out, res); err != nil {
		return nil, fmt.Errorf("%w: %s result: %w", ErrDiff, name, err)
	}
	return res, nil
}
