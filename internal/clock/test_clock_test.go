package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestClockNow(t *testing.T) {
	start := time.Unix(1700000000, 0)
	clk := NewTestClock(start)
	assert.Equal(t, start, clk.Now())

	clk.Advance(time.Minute)
	assert.Equal(t, start.Add(time.Minute), clk.Now())
}

func TestTestClockAfterFiresOnAdvance(t *testing.T) {
	clk := NewTestClock(time.Unix(1700000000, 0))
	ch := clk.After(time.Minute)

	clk.Advance(59 * time.Second)
	select {
	case <-ch:
		t.Fatal("timer fired before its deadline")
	default:
	}

	clk.Advance(time.Second)
	select {
	case <-ch:
	default:
		t.Fatal("timer did not fire at its deadline")
	}
}

func TestTestClockZeroDelayFiresImmediately(t *testing.T) {
	clk := NewTestClock(time.Unix(1700000000, 0))
	ch := clk.After(0)

	select {
	case <-ch:
	default:
		t.Fatal("zero-delay timer did not fire")
	}
}

func TestTestClockMultipleTimers(t *testing.T) {
	clk := NewTestClock(time.Unix(1700000000, 0))
	early := clk.After(time.Second)
	late := clk.After(time.Hour)

	clk.Advance(time.Minute)
	require.Len(t, early, 1)
	assert.Len(t, late, 0)
}
