package cardtable

import "errors"

// ErrSetup is returned by NewTable when the table cannot be built, e.g. the
// canvas has no area. Nothing is started when it is returned.
var ErrSetup = errors.New("cardtable: setup failed")

// ErrSurfaceUnavailable is reported when the drawing surface cannot be
// acquired for a frame. The render loop stops rescheduling itself.
var ErrSurfaceUnavailable = errors.New("cardtable: drawing surface unavailable")

// ErrResourceUnavailable wraps every asset load failure. Objects whose texture
// failed keep rendering as a no-op.
var ErrResourceUnavailable = errors.New("cardtable: resource unavailable")
