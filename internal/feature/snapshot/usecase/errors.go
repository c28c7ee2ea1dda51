package usecase

import "errors"

// ErrMissingTicker は先頭銘柄にティッカーが含まれていない場合のエラーです。
var ErrMissingTicker = errors.New("first most actively traded entry has no ticker")
