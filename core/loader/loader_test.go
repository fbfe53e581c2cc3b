package loader_test

import (
	"errors"
	"testing"

	"github.com/alexgpeppe/io-functions-services/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	t.Run("LoadsEnabledFeatures", func(t *testing.T) {
		enabled := &fakeFeature{name: "subscriptions", enabled: true}
		disabled := &fakeFeature{name: "dormant", enabled: false}

		mgr := loader.NewManager()
		mgr.Register(enabled)
		mgr.Register(disabled)

		err := mgr.LoadAll(app)
		assert.NoError(t, err)
		assert.True(t, enabled.loaded)
		assert.False(t, disabled.loaded)
	})

	t.Run("FirstFailureAborts", func(t *testing.T) {
		failing := &fakeFeature{name: "broken", enabled: true, loadErr: errors.New("no routes")}
		after := &fakeFeature{name: "later", enabled: true}

		mgr := loader.NewManager()
		mgr.Register(failing)
		mgr.Register(after)

		err := mgr.LoadAll(app)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
		assert.False(t, after.loaded)
	})
}
