package lifecycle

import "errors"

// ErrInternal возвращается при ошибках хранилища
var ErrInternal = errors.New("lifecycle: internal error")
