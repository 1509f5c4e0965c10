package notify_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/taxa/internal/adapters/notify"
	"go.trai.ch/taxa/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestNotifier_LogsAndKeeps(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	errTimeout := errors.New("lookup timed out")
	log.EXPECT().Error(errTimeout)

	n := notify.New(log, 3)
	n.Notify(errTimeout)

	assert.Equal(t, []string{"lookup timed out"}, n.Messages())
}

func TestNotifier_IgnoresNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	n := notify.New(log, 3)
	n.Notify(nil)

	assert.Empty(t, n.Messages())
}

func TestNotifier_KeepsMostRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).Times(5)

	n := notify.New(log, 2)
	for i := range 5 {
		n.Notify(fmt.Errorf("failure %d", i))
	}

	assert.Equal(t, []string{"failure 3", "failure 4"}, n.Messages())

	n.Clear()
	assert.Empty(t, n.Messages())
}

func TestNotifier_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	n := notify.New(log, 0)
	for i := range notify.DefaultLimit + 2 {
		n.Notify(fmt.Errorf("failure %d", i))
	}

	assert.Len(t, n.Messages(), notify.DefaultLimit)
}

func TestNotifier_Observe(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any())

	var seen []error
	n := notify.New(log, 3)
	n.Observe(func(err error) { seen = append(seen, err) })

	errBoom := errors.New("boom")
	n.Notify(errBoom)

	assert.Equal(t, []error{errBoom}, seen)
}
