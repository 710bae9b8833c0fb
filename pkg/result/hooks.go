package result

// Side-effect hooks. Each hook runs its block only when the matching
// variant is active and returns the receiver unchanged, so multiple hooks
// chain fluently without altering the value:
//
//	res.OnLoading(func(d Profile, ok bool) { spinner.Show() }).
//		OnSuccess(func(d Profile) { view.Render(d) }).
//		OnFailure(func(r Reason, d Profile, ok bool) { view.Error(r) })

// OnIdle invokes block with the placeholder payload (and its presence)
// when the result is Idle.
func (r Result[D]) OnIdle(block func(data D, ok bool)) Result[D] {
	if r.IsIdle() {
		block(r.Data())
	}
	return r
}

// OnLoading invokes block with the stale payload (and its presence) when
// the result is Loading.
func (r Result[D]) OnLoading(block func(data D, ok bool)) Result[D] {
	if r.IsLoading() {
		block(r.Data())
	}
	return r
}

// OnSuccess invokes block with the payload when the result is Success.
func (r Result[D]) OnSuccess(block func(data D)) Result[D] {
	if r.IsSuccess() {
		block(*r.data)
	}
	return r
}

// OnFailure invokes block with the reason and the stale payload (and its
// presence) when the result is Failure.
func (r Result[D]) OnFailure(block func(reason Reason, data D, ok bool)) Result[D] {
	if r.IsFailure() {
		data, ok := r.Data()
		block(r.reason, data, ok)
	}
	return r
}
