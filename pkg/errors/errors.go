package errors

import "errors"

// ErrDuplicateKey 唯一约束冲突：相同记录已存在
var ErrDuplicateKey = errors.New("记录已存在")

// ErrForbidden 操作未授权
var ErrForbidden = errors.New("无权限执行此操作")
