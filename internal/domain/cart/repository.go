package cart

import "context"

// Repository stores a whole cart under a single key. Load returns an empty
// slice when nothing is stored and ErrUnreadableCart when the stored value
// cannot be decoded.
type Repository interface {
	Load(ctx context.Context, key string) ([]Entry, error)
	Save(ctx context.Context, key string, entries []Entry) error
}
