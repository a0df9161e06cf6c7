// Package errors はsimplereg全体のエラーハンドリングと警告システムを提供します。
// 回帰モデルが返すエラーは3種類（InvalidInput / DegenerateInput / NotFitted）に分類され、
// それぞれ型アサーション（As）とセンチネル比較（Is）の両方で判別できます。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("simplereg-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// nilを渡すと警告は破棄されます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
// nilを渡すと従来のハンドラに戻ります。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが設定されている場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
// ハンドラはロックの外で呼ばれるので、ハンドラ内でハンドラを差し替えてもよい。
func Warn(w error) {
	warningMutex.Lock()
	handler := warningHandler
	if zerologWarnFunc != nil {
		handler = zerologWarnFunc
	}
	warningMutex.Unlock()

	if handler != nil {
		handler(w)
	}
}

// ===========================================================================
//
//	エラーコード
//
// ===========================================================================

// ログやCLIの終了理由に使うエラーコード
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeDegenerateInput = "DEGENERATE_INPUT"
	CodeNotFitted       = "NOT_FITTED"
	CodeUnknown         = "UNKNOWN"
)

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrInvalidInput は入力データが不正（長さ不一致・空）な場合のセンチネルです。
	ErrInvalidInput = New("invalid input")

	// ErrDegenerateInput は入力データが退化している（分散ゼロ）場合のセンチネルです。
	ErrDegenerateInput = New("degenerate input")

	// ErrNotFitted は学習前のモデルを使った場合のセンチネルです。
	ErrNotFitted = New("model not fitted")
)

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// InvalidInputError は訓練データや評価データの形が不正な場合のエラーです。
// 長さの不一致、空のシーケンスなどが該当します。
type InvalidInputError struct {
	Op     string
	Reason string
	LenX   int
	LenY   int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("simplereg: %s: invalid input: %s (len(x)=%d, len(y)=%d)", e.Op, e.Reason, e.LenX, e.LenY)
}

// Is はErrInvalidInputとの比較を可能にします。
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidInputError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Int("len_x", e.LenX).
		Int("len_y", e.LenY).
		Str("code", CodeInvalidInput)
}

// NewInvalidInputError は新しいInvalidInputErrorを作成し、スタックトレースを付与します。
func NewInvalidInputError(op, reason string, lenX, lenY int) error {
	return errors.WithStack(&InvalidInputError{Op: op, Reason: reason, LenX: lenX, LenY: lenY})
}

// DegenerateInputError は特徴量の分散がちょうどゼロで、傾きが定義できない場合のエラーです。
type DegenerateInputError struct {
	Op      string
	Samples int
	Value   float64 // 全サンプルが共有する値
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("simplereg: %s: degenerate input: variance is zero (all %d values equal %g)", e.Op, e.Samples, e.Value)
}

// Is はErrDegenerateInputとの比較を可能にします。
func (e *DegenerateInputError) Is(target error) bool {
	return target == ErrDegenerateInput
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DegenerateInputError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("samples", e.Samples).
		Float64("value", e.Value).
		Str("code", CodeDegenerateInput)
}

// NewDegenerateInputError は新しいDegenerateInputErrorを作成し、スタックトレースを付与します。
func NewDegenerateInputError(op string, samples int, value float64) error {
	return errors.WithStack(&DegenerateInputError{Op: op, Samples: samples, Value: value})
}

// NotFittedError はモデルが未学習の状態で `Predict` や `Score` を呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("simplereg: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// Is はErrNotFittedとの比較を可能にします。
func (e *NotFittedError) Is(target error) bool {
	return target == ErrNotFitted
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("code", CodeNotFitted)
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method})
}

// Code はエラーの種類に対応するエラーコードを返します。
// nilの場合は空文字列を返します。
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case Is(err, ErrDegenerateInput):
		return CodeDegenerateInput
	case Is(err, ErrNotFitted):
		return CodeNotFitted
	default:
		return CodeUnknown
	}
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// StackTrace はcockroachdb/errorsが記録したスタックトレースを文字列で返します。
// スタックを持たないエラーの場合は空文字列です。
func StackTrace(err error) string {
	details := errors.GetSafeDetails(err).SafeDetails
	if len(details) > 0 {
		return details[0]
	}
	return ""
}
