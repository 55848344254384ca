package application

import "log/slog"

// loggingPresenter は演出フックを構造化ログとして記録する実装です。
// 種別ごとに1インスタンスが選択されます（ヘッドレス実行向け）。
type loggingPresenter struct {
	kind MoleKind
}

var _ MolePresenter = loggingPresenter{}

// LoggingPresenterFactory は種別ごとのログ演出実装を返します。
func LoggingPresenterFactory(kind MoleKind) MolePresenter {
	return loggingPresenter{kind: kind}
}

func (p loggingPresenter) log(msg string, args ...any) {
	slog.Debug(msg, append([]any{"kind", p.kind.String()}, args...)...)
}

func (p loggingPresenter) OnEnabling() { p.log("mole enabling") }
func (p loggingPresenter) OnEnabled()  { p.log("mole enabled") }
func (p loggingPresenter) OnPopping(feedback float32) {
	p.log("mole popping", "feedback", feedback)
}
func (p loggingPresenter) OnMissed()     { p.log("mole missed") }
func (p loggingPresenter) OnDisabling()  { p.log("mole disabling") }
func (p loggingPresenter) OnExpired()    { p.log("mole expired") }
func (p loggingPresenter) OnReset()      { p.log("mole reset") }
func (p loggingPresenter) OnReveal()     { p.log("mole revealed") }
func (p loggingPresenter) OnHoverEnter() { p.log("mole hover enter") }
func (p loggingPresenter) OnHoverLeave() { p.log("mole hover leave") }
