package plugins

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"tilebar.dev/panel/internal/core/plugin"
	"tilebar.dev/panel/internal/core/ports"
	"tilebar.dev/panel/internal/core/registry"
)

// fakeHandle is an opened library in tests
type fakeHandle struct {
	symbols map[string]any
}

func (h *fakeHandle) Lookup(symbol string) (any, error) {
	sym, ok := h.symbols[symbol]
	if !ok {
		return nil, fmt.Errorf("symbol %s not found", symbol)
	}
	return sym, nil
}

// fakeOpener serves canned libraries and records every open
type fakeOpener struct {
	libs  map[string]*fakeHandle
	opens []string
}

func newFakeOpener() *fakeOpener {
	return &fakeOpener{libs: make(map[string]*fakeHandle)}
}

func (o *fakeOpener) Open(path string) (ports.ModuleHandle, error) {
	o.opens = append(o.opens, path)
	handle, ok := o.libs[path]
	if !ok {
		return nil, fmt.Errorf("cannot open %s: no such file", path)
	}
	return handle, nil
}

type testModule struct{}

func (testModule) Construct(*plugin.Instance) error { return nil }
func (testModule) Destroy(*plugin.Instance)         {}

func dynClass(typeName string) *plugin.Class {
	return &plugin.Class{
		Type:    typeName,
		Name:    typeName,
		Version: "1.0",
		Module:  testModule{},
	}
}

// addLibrary registers a well-formed library for typeName with the opener
// and returns a pointer to its shutdown invocation count.
func (o *fakeOpener) addLibrary(l *DynamicLoader, typeName string) *int {
	shutdowns := new(int)
	o.libs[l.LibraryPath(typeName)] = &fakeHandle{symbols: map[string]any{
		ClassSymbol:    func() *plugin.Class { return dynClass(typeName) },
		ShutdownSymbol: func() { *shutdowns++ },
	}}
	return shutdowns
}

func newTestLoader() (*DynamicLoader, *registry.ClassRegistry, *fakeOpener) {
	reg := registry.NewClassRegistry(nil)
	opener := newFakeOpener()
	return NewDynamicLoader(reg, opener, "/lib/test", nil), reg, opener
}

func TestGet_FastPathSkipsLibraryIO(t *testing.T) {
	loader, reg, opener := newTestLoader()
	require.NoError(t, reg.Register(dynClass("clock")))

	class, err := loader.Get("clock")
	require.NoError(t, err)
	assert.Equal(t, 1, class.Count)
	assert.Empty(t, opener.opens, "a registered type must resolve with no library I/O")
}

func TestGet_LoadsConventionNamedLibrary(t *testing.T) {
	loader, reg, opener := newTestLoader()
	reg.MarkHostStarted()
	opener.addLibrary(loader, "weather")

	class, err := loader.Get("weather")
	require.NoError(t, err)
	assert.Equal(t, "weather", class.Type)
	assert.Equal(t, 1, class.Count)
	assert.True(t, class.Dynamic)
	assert.Equal(t, []string{"/lib/test/tilebar-plugin-weather.so"}, opener.opens)
	assert.True(t, loader.Resident("weather"))
}

func TestGet_MissingLibrary_Fails(t *testing.T) {
	loader, reg, _ := newTestLoader()

	class, err := loader.Get("nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, plugin.ErrUnknownType)
	assert.Nil(t, class)
	assert.True(t, reg.Empty(), "a failed load must not register anything")
}

func TestGet_LibraryWithoutEntryPoint_FailsAndStaysResident(t *testing.T) {
	loader, reg, opener := newTestLoader()
	opener.libs[loader.LibraryPath("silent")] = &fakeHandle{symbols: map[string]any{}}

	class, err := loader.Get("silent")
	require.Error(t, err)
	assert.Nil(t, class)
	assert.Contains(t, err.Error(), ClassSymbol)
	assert.True(t, reg.Empty())
	// The platform loader keeps the object in memory; nothing to assert
	// beyond the failure itself.
}

func TestGet_LibraryDeclaringWrongType_Fails(t *testing.T) {
	loader, _, opener := newTestLoader()
	opener.libs[loader.LibraryPath("weather")] = &fakeHandle{symbols: map[string]any{
		ClassSymbol: func() *plugin.Class { return dynClass("imposter") },
	}}

	_, err := loader.Get("weather")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "imposter")
}

func TestPut_UnknownType_IsNoOp(t *testing.T) {
	loader, _, _ := newTestLoader()
	loader.Put("never-seen")
}

func TestPut_StaticClassStaysRegisteredAtZero(t *testing.T) {
	loader, reg, _ := newTestLoader()
	clock := dynClass("clock")
	require.NoError(t, reg.Register(clock))

	_, err := loader.Get("clock")
	require.NoError(t, err)
	loader.Put("clock")

	assert.Equal(t, 0, clock.Count)
	_, ok := reg.Find("clock")
	assert.True(t, ok, "static classes are never unloaded")
}

func TestPut_LastDynamicReference_UnregistersAndShutsDownOnce(t *testing.T) {
	loader, reg, opener := newTestLoader()
	reg.MarkHostStarted()
	shutdowns := opener.addLibrary(loader, "weather")

	_, err := loader.Get("weather")
	require.NoError(t, err)
	_, err = loader.Get("weather")
	require.NoError(t, err)
	assert.Len(t, opener.opens, 1, "second Get must hit the registry")

	loader.Put("weather")
	_, ok := reg.Find("weather")
	assert.True(t, ok, "a live reference remains")
	assert.Equal(t, 0, *shutdowns)

	loader.Put("weather")
	_, ok = reg.Find("weather")
	assert.False(t, ok, "last reference released")
	assert.Equal(t, 1, *shutdowns, "unload hook must run exactly once")
	assert.False(t, loader.Resident("weather"))

	// Releasing again is a no-op on the now-unknown type.
	loader.Put("weather")
	assert.Equal(t, 1, *shutdowns)
}

func TestGetPut_CountRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		loader, reg, opener := newTestLoader()
		static := rapid.Bool().Draw(t, "static")
		if static {
			if err := reg.Register(dynClass("tile")); err != nil {
				t.Fatalf("register: %v", err)
			}
		} else {
			reg.MarkHostStarted()
			opener.addLibrary(loader, "tile")
		}

		gets := rapid.IntRange(1, 20).Draw(t, "gets")
		for i := 0; i < gets; i++ {
			if _, err := loader.Get("tile"); err != nil {
				t.Fatalf("get %d: %v", i, err)
			}
		}

		class, ok := reg.Find("tile")
		if !ok || class.Count != gets {
			t.Fatalf("count = %v after %d gets", class, gets)
		}

		for i := 0; i < gets; i++ {
			loader.Put("tile")
		}

		class, ok = reg.Find("tile")
		if static {
			if !ok || class.Count != 0 {
				t.Fatalf("static class must stay registered with count 0")
			}
		} else if ok {
			t.Fatalf("dynamic class must leave the registry at count 0")
		}
	})
}

// End-to-end story: a built-in clock plus a runtime-loaded weather module.
func TestScenario_StaticClockAndDynamicWeather(t *testing.T) {
	loader, reg, opener := newTestLoader()

	clock := dynClass("clock")
	require.NoError(t, reg.Register(clock))
	reg.MarkHostStarted()
	shutdowns := opener.addLibrary(loader, "weather")

	weather, err := loader.Get("weather")
	require.NoError(t, err)
	assert.Equal(t, 1, weather.Count)
	assert.True(t, weather.Dynamic)
	assert.Len(t, opener.opens, 1, "first weather Get loads the library")

	got, err := loader.Get("clock")
	require.NoError(t, err)
	assert.Same(t, clock, got)
	assert.Equal(t, 1, clock.Count)
	assert.Len(t, opener.opens, 1, "clock Get must not touch the disk")

	loader.Put("weather")
	_, ok := reg.Find("weather")
	assert.False(t, ok)
	assert.Equal(t, 1, *shutdowns)

	loader.Put("clock")
	_, ok = reg.Find("clock")
	assert.True(t, ok, "clock stays for the remainder of the process")
}
