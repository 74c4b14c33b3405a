package webclient_test

import (
	"testing"

	"github.com/filtersight/filtersight/internal/logging"
	"github.com/filtersight/filtersight/internal/testutil"
	"github.com/filtersight/filtersight/internal/webclient"
)

func TestNew_DefaultsToNetHTTP(t *testing.T) {
	webclient.RegisterDefaultBackends()

	wc, err := webclient.New(webclient.Config{}, &testutil.DummyLogger{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer wc.Close()

	if _, ok := wc.(*webclient.NetHTTPClient); !ok {
		t.Errorf("expected *NetHTTPClient, got %T", wc)
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	webclient.RegisterDefaultBackends()

	_, err := webclient.New(webclient.Config{Backend: "carrier-pigeon"}, &testutil.DummyLogger{})
	if err == nil {
		t.Fatal("expected an error for an unregistered backend")
	}
}

func TestRegisterBackend_NameIsCaseInsensitive(t *testing.T) {
	webclient.RegisterBackend("Scripted", func(cfg webclient.Config, logger logging.Logger) (webclient.WebClient, error) {
		return &testutil.ScriptedWebClient{}, nil
	})

	wc, err := webclient.New(webclient.Config{Backend: "scripted"}, &testutil.DummyLogger{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer wc.Close()

	if _, ok := wc.(*testutil.ScriptedWebClient); !ok {
		t.Errorf("expected the scripted backend, got %T", wc)
	}
}

// Sanity check that the registry survives repeated default registration.
func TestRegisterDefaultBackends_Idempotent(t *testing.T) {
	webclient.RegisterDefaultBackends()
	webclient.RegisterDefaultBackends()

	wc, err := webclient.New(webclient.Config{Backend: "nethttp"}, &testutil.DummyLogger{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer wc.Close()

	if err := wc.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
