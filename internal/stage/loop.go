package stage

import "time"

// Running reports whether a frame callback is currently scheduled.
func (st *Stage) Running() bool {
	return st.running
}

// Paused reports the pause flag. Pausing does not cancel the scheduled
// frame callback; it only suppresses gameplay updates.
func (st *Stage) Paused() bool {
	return st.paused
}

// Stop cancels the next scheduled frame and halts the loop. It is a
// silent no-op when the loop is not running or while the loading state is
// active. The stop time is recorded for Restart's elapsed bookkeeping.
func (st *Stage) Stop() {
	if !st.running || st.current == StateLoading {
		return
	}
	st.stopLoop()
	st.pauseTime = time.Now()
	if st.audio != nil {
		st.audio.PauseTrack()
	}
	st.logger.Debug("loop stopped", "state", st.current)
	st.publish(EventStop, 0)
	if st.OnStop != nil {
		st.OnStop()
	}
}

// Pause freezes gameplay updates without cancelling the scheduled frame
// callback: frames keep firing but screens are not updated or drawn. It
// is a silent no-op when already paused or while loading.
func (st *Stage) Pause() {
	if st.paused || st.current == StateLoading {
		return
	}
	st.paused = true
	st.pauseTime = time.Now()
	if st.audio != nil {
		st.audio.PauseTrack()
	}
	st.logger.Debug("paused", "state", st.current)
	st.publish(EventPause, 0)
	if st.OnPause != nil {
		st.OnPause()
	}
}

// Resume lifts the pause flag. It is a silent no-op when not paused. The
// published event carries the elapsed pause duration.
func (st *Stage) Resume() {
	if !st.paused {
		return
	}
	st.paused = false
	// Drop the stale frame timestamp so the first tick after a long pause
	// does not integrate the whole pause as one step.
	st.lastFrame = time.Time{}
	elapsed := time.Since(st.pauseTime)
	if st.audio != nil {
		st.audio.ResumeTrack()
	}
	st.logger.Debug("resumed", "state", st.current, "paused_for", elapsed)
	st.publish(EventResume, elapsed)
	if st.OnResume != nil {
		st.OnResume()
	}
}

// Restart starts the loop again after a Stop. It is a silent no-op when
// the loop is already running. The published event carries the elapsed
// stopped duration, and a one-shot repaint is forced.
func (st *Stage) Restart() {
	if st.running {
		return
	}
	st.startLoop()
	st.lastFrame = time.Time{}
	st.repaint = true
	var elapsed time.Duration
	if !st.pauseTime.IsZero() {
		elapsed = time.Since(st.pauseTime)
	}
	if st.audio != nil {
		st.audio.ResumeTrack()
	}
	st.logger.Debug("restarted", "state", st.current, "stopped_for", elapsed)
	st.publish(EventRestart, elapsed)
	if st.OnRestart != nil {
		st.OnRestart()
	}
}

// startLoop schedules the first frame if the loop is not already running.
func (st *Stage) startLoop() {
	if st.running {
		return
	}
	st.running = true
	st.scheduleFrame()
}

// stopLoop cancels the pending frame request, if any, and marks the loop
// stopped. A frame callback already executing runs to completion.
func (st *Stage) stopLoop() {
	if !st.running {
		return
	}
	st.running = false
	if st.frameScheduled {
		st.sched.CancelFrame(st.frameHandle)
		st.frameScheduled = false
	}
}

func (st *Stage) scheduleFrame() {
	st.frameHandle = st.sched.RequestFrame(st.frame)
	st.frameScheduled = true
}

// frame is the per-frame tick: update the active screen, redraw it when
// it reports a change or a repaint is forced, drain any deferred state
// switch, and reschedule. The loop terminates only via
// Stop or a switch in progress.
func (st *Stage) frame(now time.Time) {
	st.frameScheduled = false

	dt := 1.0
	var elapsed time.Duration
	if !st.lastFrame.IsZero() {
		elapsed = now.Sub(st.lastFrame)
		dt = float64(elapsed) / float64(st.frameDuration)
		// A stall (debugger, window drag) must not explode one step.
		if dt > 4 {
			dt = 4
		}
		if dt < 0 {
			dt = 0
		}
	} else {
		elapsed = st.frameDuration
	}
	st.lastFrame = now

	if !st.paused {
		st.fade.advance(elapsed)
		if cur := st.Current(); cur != nil {
			changed := cur.Update(dt)
			if (changed || st.repaint) && st.target != nil {
				cur.Draw(st.target)
			}
			st.repaint = false
		}
	} else if st.repaint {
		if cur := st.Current(); cur != nil && st.target != nil {
			cur.Draw(st.target)
		}
		st.repaint = false
	}

	st.drainPending()

	if st.running && !st.frameScheduled {
		st.scheduleFrame()
	}
}

// drainPending executes the deferred state switch, if one is queued. This
// runs after the frame's update/draw so the outgoing screen is never torn
// down mid-traversal.
func (st *Stage) drainPending() {
	if st.pending == nil {
		return
	}
	state := *st.pending
	st.pending = nil
	st.switchState(state)
}

// switchState performs the actual switch: stop the loop, destroy the
// outgoing screen, reset the new one with the captured extra arguments,
// restart the loop, run the switch-complete hook, and force a repaint.
func (st *Stage) switchState(state State) {
	st.stopLoop()

	if cur := st.Current(); cur != nil {
		cur.Destroy()
	}

	prev := st.current
	st.current = state
	st.screens[state].screen.Reset(st.extraArgs...)

	st.startLoop()

	if cb := st.onSwitchComplete; cb != nil {
		st.onSwitchComplete = nil
		cb()
	}

	st.repaint = true
	st.logger.Debug("state switched", "from", prev, "to", state)
	st.publish(EventStateChange, 0)
}
