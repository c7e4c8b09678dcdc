// Package errs 定义账本核心的分层错误模型：
//   - 编解码层错误（TruncatedInputError / UnknownInstructionError / InvalidEncodingError）
//   - 业务层错误（DomainError，携带 DomainCode）
//   - 组合层错误（CompositeError，包装下层错误，不丢失原始类别）
//
// 所有错误均为类型化结构体，可通过 errors.Is / errors.As 匹配；
// 核心内部禁止将错误降级为纯文本，仅最外层展示边界允许渲染为人类可读信息。
package errs

import (
	"errors"
	"fmt"
)

// DomainCode 表示业务层错误类别。
type DomainCode uint8

const (
	CodeInsufficientBalance DomainCode = iota
	CodeAccountNotFound
	CodeUnauthorizedSigner
	CodeInvalidAmount
)

func (c DomainCode) String() string {
	switch c {
	case CodeInsufficientBalance:
		return "insufficient_balance"
	case CodeAccountNotFound:
		return "account_not_found"
	case CodeUnauthorizedSigner:
		return "unauthorized_signer"
	case CodeInvalidAmount:
		return "invalid_amount"
	default:
		return fmt.Sprintf("domain_code(%d)", uint8(c))
	}
}

// DomainError 表示一次业务校验失败，Code 为类别，Detail 为补充上下文（可为空）。
type DomainError struct {
	Code   DomainCode
	Detail string
}

func (e *DomainError) Error() string {
	if e.Detail == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

// Is 支持按 Code 匹配：errors.Is(err, &DomainError{Code: CodeInvalidAmount})
func (e *DomainError) Is(target error) bool {
	var de *DomainError
	if !errors.As(target, &de) {
		return false
	}
	return e.Code == de.Code
}

// NewDomainError 构造业务层错误，detail 按 format 格式化。
func NewDomainError(code DomainCode, format string, args ...any) *DomainError {
	return &DomainError{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// TruncatedInputError 表示输入缓冲区长度不足以容纳声明的结构。
type TruncatedInputError struct {
	Got  int // 实际长度
	Want int // 该结构要求的最小长度
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("truncated input: got %d bytes, want at least %d", e.Got, e.Want)
}

// UnknownInstructionError 表示判别字节不在已知指令集合内，Opcode 保留原始字节值。
type UnknownInstructionError struct {
	Opcode byte
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("unknown instruction opcode: %d", e.Opcode)
}

// InvalidEncodingError 表示某字段的字节内容不符合其声明的编码（如非法 UTF-8）。
type InvalidEncodingError struct {
	Field string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid encoding in field %q", e.Field)
}

// CompositeKind 表示组合层错误的变体类别。
type CompositeKind uint8

const (
	CompositeDomain        CompositeKind = iota // 包装 DomainError
	CompositeNetwork                            // 网络层失败，携带描述信息
	CompositeSerialization                      // 序列化/反序列化失败
)

func (k CompositeKind) String() string {
	switch k {
	case CompositeDomain:
		return "domain"
	case CompositeNetwork:
		return "network"
	case CompositeSerialization:
		return "serialization"
	default:
		return fmt.Sprintf("composite_kind(%d)", uint8(k))
	}
}

// CompositeError 是上层统一的错误封装。通过显式组合（而非继承）持有下层错误，
// Unwrap 始终返回原始错误，保证转换无损。
type CompositeError struct {
	Kind    CompositeKind
	Message string // 仅 CompositeNetwork 使用
	cause   error  // 被包装的下层错误，可为 nil
}

func (e *CompositeError) Error() string {
	switch e.Kind {
	case CompositeDomain:
		return fmt.Sprintf("domain error: %v", e.cause)
	case CompositeNetwork:
		return fmt.Sprintf("network error: %s", e.Message)
	case CompositeSerialization:
		if e.cause != nil {
			return fmt.Sprintf("serialization error: %v", e.cause)
		}
		return "serialization error"
	default:
		return fmt.Sprintf("composite error (%s)", e.Kind)
	}
}

func (e *CompositeError) Unwrap() error {
	return e.cause
}

// WrapDomain 是 DomainError → CompositeError 的唯一规范映射：
// 所有业务错误一律进入 CompositeDomain 变体并保留原错误，转换是全函数且无损。
func WrapDomain(err *DomainError) *CompositeError {
	return &CompositeError{Kind: CompositeDomain, cause: err}
}

// NewNetworkError 构造网络层组合错误。
func NewNetworkError(message string) *CompositeError {
	return &CompositeError{Kind: CompositeNetwork, Message: message}
}

// NewSerializationError 构造序列化组合错误，cause 可为 nil。
func NewSerializationError(cause error) *CompositeError {
	return &CompositeError{Kind: CompositeSerialization, cause: cause}
}
