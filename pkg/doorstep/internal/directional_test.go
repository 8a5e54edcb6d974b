package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep/constants"
)

func TestDirectionalRepeatTiming(t *testing.T) {
	clock := time.Unix(0, 0)
	d := NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
	d.now = func() time.Time { return clock }

	assert.True(t, d.SetHeld(constants.VirtualButtonDown, true))
	assert.Equal(t, constants.VirtualButtonUnassigned, d.Update())

	clock = clock.Add(299 * time.Millisecond)
	assert.Equal(t, constants.VirtualButtonUnassigned, d.Update())

	clock = clock.Add(time.Millisecond)
	assert.Equal(t, constants.VirtualButtonDown, d.Update())

	clock = clock.Add(49 * time.Millisecond)
	assert.Equal(t, constants.VirtualButtonUnassigned, d.Update())
	clock = clock.Add(time.Millisecond)
	assert.Equal(t, constants.VirtualButtonDown, d.Update())

	d.SetHeld(constants.VirtualButtonDown, false)
	assert.False(t, d.IsHeld())
	clock = clock.Add(time.Second)
	assert.Equal(t, constants.VirtualButtonUnassigned, d.Update())
}

func TestDirectionalIgnoresOtherButtons(t *testing.T) {
	d := NewDirectionalInput()

	assert.False(t, d.SetHeld(constants.VirtualButtonA, true))
	assert.False(t, d.IsHeld())
}

func TestDirectionalLatestPressWins(t *testing.T) {
	clock := time.Unix(0, 0)
	d := NewDirectionalInputWithTiming(10*time.Millisecond, 10*time.Millisecond)
	d.now = func() time.Time { return clock }

	d.SetHeld(constants.VirtualButtonDown, true)
	d.SetHeld(constants.VirtualButtonUp, true)
	// Releasing the older direction does not cancel the newer one.
	d.SetHeld(constants.VirtualButtonDown, false)

	clock = clock.Add(10 * time.Millisecond)
	assert.Equal(t, constants.VirtualButtonUp, d.Update())
}

func TestDirectionalRepeatedPressKeepsTiming(t *testing.T) {
	clock := time.Unix(0, 0)
	d := NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
	d.now = func() time.Time { return clock }

	d.SetHeld(constants.VirtualButtonUp, true)

	fired := 0
	for elapsed := 16 * time.Millisecond; elapsed <= 2*time.Second; elapsed += 16 * time.Millisecond {
		clock = time.Unix(0, 0).Add(elapsed)
		// Keyboard auto-repeat re-reports the held key every other frame.
		if elapsed >= 512*time.Millisecond && elapsed%(32*time.Millisecond) == 0 {
			d.SetHeld(constants.VirtualButtonUp, true)
		}
		if d.Update() == constants.VirtualButtonUp && elapsed >= 600*time.Millisecond {
			fired++
		}
	}

	// 1400ms of holding at a 50ms interval, sampled on 16ms frames.
	assert.GreaterOrEqual(t, fired, 20)
}
