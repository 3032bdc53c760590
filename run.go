package status

import "errors"

// Catch decides whether a returned error belongs to the recoverable failure
// family that a run wrapper may convert into a status error. Errors outside
// the family are propagated to the caller untouched.
type Catch func(error) bool

// CatchAll admits every non-nil error into the failure family.
func CatchAll(error) bool { return true }

// CatchIs admits errors matching any of the targets via errors.Is.
//
// Example:
//
//	s.RunAndCatch(op, status.WithCatch(status.CatchIs(sql.ErrNoRows)))
func CatchIs(targets ...error) Catch {
	return func(err error) bool {
		for _, target := range targets {
			if errors.Is(err, target) {
				return true
			}
		}
		return false
	}
}

// CatchAs admits errors whose chain contains type E, via errors.As.
//
// Example:
//
//	status.WithCatch(status.CatchAs[*net.OpError]())
func CatchAs[E error]() Catch {
	return func(err error) bool {
		var target E
		return errors.As(err, &target)
	}
}

// runConfig holds per-call run-wrapper settings.
type runConfig struct {
	errCode    int
	hasErrCode bool
	okCode     int
	hasOKCode  bool
	catch      Catch
}

// RunOption configures a single RunAndCatch call.
type RunOption func(*runConfig)

// WithErrorCode attaches code to the status error created when the wrapped
// operation fails with a caught error.
func WithErrorCode(code int) RunOption {
	return func(c *runConfig) { c.errCode, c.hasErrCode = code, true }
}

// WithSuccessCode sets the container-level status code to code when the
// wrapped operation succeeds. Without it, success clears the container code.
func WithSuccessCode(code int) RunOption {
	return func(c *runConfig) { c.okCode, c.hasOKCode = code, true }
}

// WithCatch restricts the failure family the wrapper may convert into a
// status error. The default is CatchAll.
func WithCatch(catch Catch) RunOption {
	return func(c *runConfig) { c.catch = catch }
}

func newRunConfig(opts []RunOption) runConfig {
	cfg := runConfig{catch: CatchAll}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// RunAndCatch executes op and narrows its failure into this container.
//
// If op returns nil, the container's status code is set to the success code
// (or cleared when none was supplied) and RunAndCatch returns nil. If op
// returns an error inside the configured failure family, it is captured as a
// status error using the error's own message, carrying the configured error
// code, the container's own status code is cleared, and RunAndCatch returns
// nil: the failure is now reported through the status. An error outside the
// family is returned unmodified and the container is left untouched: such
// failures are not this container's concern.
//
// Panics raised by op are never recovered. A panic is a defect and must
// surface immediately.
func (s *Handler) RunAndCatch(op func() error, opts ...RunOption) error {
	cfg := newRunConfig(opts)
	if err := op(); err != nil {
		if !cfg.catch(err) {
			return err
		}
		s.addCapturedError(err, cfg.errCode, cfg.hasErrCode)
		s.clearStatusCode()
		return nil
	}
	s.applySuccessCode(cfg)
	return nil
}

// RunAndCatchResult is the typed-result form of Handler.RunAndCatch: on
// success the operation's value is returned alongside a nil error; on a
// caught failure the zero value of R is returned and the failure is reported
// through the status; an error outside the failure family is returned
// unmodified. It is a package-level function because Go methods cannot
// introduce type parameters.
func RunAndCatchResult[R any](s *Handler, op func() (R, error), opts ...RunOption) (R, error) {
	cfg := newRunConfig(opts)
	value, err := op()
	if err != nil {
		var zero R
		if !cfg.catch(err) {
			return zero, err
		}
		s.addCapturedError(err, cfg.errCode, cfg.hasErrCode)
		s.clearStatusCode()
		return zero, nil
	}
	s.applySuccessCode(cfg)
	return value, nil
}

// RunAndSetResult executes op and, on success, stores its value as the
// container's result. Failure handling is identical to RunAndCatch. The
// stored value is only replaced while the container is valid, so a run that
// succeeds after earlier errors never clobbers a previously stored result.
func (s *ResultHandler[T]) RunAndSetResult(op func() (T, error), opts ...RunOption) error {
	value, err := RunAndCatchResult(&s.Handler, op, opts...)
	if err != nil {
		return err
	}
	if s.IsValid() {
		s.result = value
	}
	return nil
}

func (s *Handler) applySuccessCode(cfg runConfig) {
	if cfg.hasOKCode {
		s.SetStatusCode(cfg.okCode)
		return
	}
	s.clearStatusCode()
}
