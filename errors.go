package murky

import "errors"

// ErrNoLeaves is returned from [NewTree] when the leaf list is empty.
// A tree commits to at least one leaf; an empty input has no root digest.
var ErrNoLeaves = errors.New("tree requires at least one leaf")
