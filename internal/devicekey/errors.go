package devicekey

import "errors"

var (
	// ErrKeyProvisioning indicates the device key could not be loaded,
	// generated, or persisted. The failure is not cached; the next call
	// to [Manager.Key] retries provisioning from scratch.
	ErrKeyProvisioning = errors.New("device key provisioning failed")
)
