package model

// KV is a single-namespace string key-value store used to persist snapshots.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	// Set overwrites the value stored under key.
	Set(key, value string) error
	Close() error
}

// SoundPlayer plays a short sound effect. Implementations may block until
// playback ends; callers run it off the UI path.
type SoundPlayer interface {
	Play(path string) error
}
