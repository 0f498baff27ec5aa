package redis

import (
	"context"
	"errors"
	"math"
	"os"
	"testing"
	"time"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/basicstats/internal/sentinel"
	"github.com/hyp3rd/basicstats/pkg/source"
)

func TestNew_RequiresAddress(t *testing.T) {
	_, err := New()
	assert.True(t, errors.Is(err, sentinel.ErrParamCannotBeEmpty))

	_, err = New(WithAddr("   "))
	assert.True(t, errors.Is(err, sentinel.ErrParamCannotBeEmpty))

	store, err := New(WithAddr("127.0.0.1:6379"), WithDB(2), WithPassword("secret"))
	assert.Nil(t, err)
	assert.Equal(t, 2, store.Client.Options().DB)
	assert.Equal(t, "secret", store.Client.Options().Password)
	assert.Nil(t, store.Close())
}

func TestNewFromClient_Nil(t *testing.T) {
	_, err := NewFromClient(nil)
	assert.True(t, errors.Is(err, sentinel.ErrNilClient))
}

func TestFormatMembers_ParseBack(t *testing.T) {
	sample := []float64{0.1, -3, 1e-300, math.MaxFloat64, math.Inf(-1)}

	members := formatMembers(sample)
	strs := make([]string, len(members))

	for i, m := range members {
		strs[i] = m.(string)
	}

	got, err := source.ParseStrings(strs)
	assert.Nil(t, err)
	assert.Equal(t, sample, got)
}

// TestStore_LoadSave runs against a live Redis when BASICSTATS_TEST_REDIS_ADDR is set.
func TestStore_LoadSave(t *testing.T) {
	addr := os.Getenv("BASICSTATS_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("BASICSTATS_TEST_REDIS_ADDR not set")
	}

	store, err := New(WithAddr(addr), WithDialTimeout(time.Second))
	assert.Nil(t, err)

	defer store.Close()

	ctx := context.Background()
	key := "basicstats:test:" + t.Name()

	assert.Nil(t, store.Save(ctx, key, []float64{0, 0.5, -1, 1}))

	got, err := store.Load(ctx, key)
	assert.Nil(t, err)
	assert.Equal(t, []float64{0, 0.5, -1, 1}, got)

	// saving replaces rather than appends
	assert.Nil(t, store.Save(ctx, key, []float64{5}))

	got, err = store.Load(ctx, key)
	assert.Nil(t, err)
	assert.Equal(t, []float64{5}, got)

	assert.Nil(t, store.Save(ctx, key, nil))

	got, err = store.Load(ctx, key)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(got))

	_, err = store.Load(ctx, "")
	assert.True(t, errors.Is(err, sentinel.ErrParamCannotBeEmpty))
}
