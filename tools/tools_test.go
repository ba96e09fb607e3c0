package tools

import (
	"context"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/mcpdev/hello-mcp/config"
	"github.com/mcpdev/hello-mcp/registry"
)

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New(registry.Info{Name: "hello-mcp", Version: "1.0.0"})
	if err := Register(reg); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return reg
}

func TestHello(t *testing.T) {
	reg := newTestRegistry(t)

	t.Run("greets the world by default", func(t *testing.T) {
		resp := reg.Invoke(context.Background(), "hello", map[string]any{})
		if !resp.Success {
			t.Fatalf("unexpected failure: %s", resp.Err)
		}

		if resp.Payload["message"] != "Hello, World!" {
			t.Errorf("message = %v, want %q", resp.Payload["message"], "Hello, World!")
		}

		ts, ok := resp.Payload["timestamp"].(string)
		if !ok {
			t.Fatalf("timestamp = %T, want string", resp.Payload["timestamp"])
		}
		if _, err := time.Parse(time.RFC3339, ts); err != nil {
			t.Errorf("timestamp %q is not RFC 3339: %v", ts, err)
		}
	})

	t.Run("greets a named caller", func(t *testing.T) {
		resp := reg.Invoke(context.Background(), "hello", map[string]any{"name": "Alice"})
		if !resp.Success {
			t.Fatalf("unexpected failure: %s", resp.Err)
		}
		if resp.Payload["message"] != "Hello, Alice!" {
			t.Errorf("message = %v, want %q", resp.Payload["message"], "Hello, Alice!")
		}
	})

	t.Run("empty name falls back to the world", func(t *testing.T) {
		resp := reg.Invoke(context.Background(), "hello", map[string]any{"name": ""})
		if !resp.Success {
			t.Fatalf("unexpected failure: %s", resp.Err)
		}
		if resp.Payload["message"] != "Hello, World!" {
			t.Errorf("message = %v, want %q", resp.Payload["message"], "Hello, World!")
		}
	})

	t.Run("rejects non-string name", func(t *testing.T) {
		resp := reg.Invoke(context.Background(), "hello", map[string]any{"name": 42.0})
		if resp.Success {
			t.Error("expected failure for non-string name")
		}
	})

	t.Run("identical calls match up to the timestamp", func(t *testing.T) {
		first := reg.Invoke(context.Background(), "hello", map[string]any{"name": "Alice"})
		second := reg.Invoke(context.Background(), "hello", map[string]any{"name": "Alice"})

		delete(first.Payload, "timestamp")
		delete(second.Payload, "timestamp")
		if !reflect.DeepEqual(first.Payload, second.Payload) {
			t.Errorf("payloads differ: %v vs %v", first.Payload, second.Payload)
		}
	})
}

func TestEnvInfo(t *testing.T) {
	reg := newTestRegistry(t)

	t.Run("returns defaults when variables are unset", func(t *testing.T) {
		for _, key := range []string{config.EnvTestEnv, config.EnvDebug, config.EnvLogLevel} {
			t.Setenv(key, "")
			_ = os.Unsetenv(key)
		}

		resp := reg.Invoke(context.Background(), "get_env_info", nil)
		if !resp.Success {
			t.Fatalf("unexpected failure: %s", resp.Err)
		}

		if resp.Payload["test_env"] != config.DefaultTestEnv {
			t.Errorf("test_env = %v, want %q", resp.Payload["test_env"], config.DefaultTestEnv)
		}
		if resp.Payload["debug"] != "false" {
			t.Errorf("debug = %v, want %q", resp.Payload["debug"], "false")
		}
		if resp.Payload["log_level"] != "info" {
			t.Errorf("log_level = %v, want %q", resp.Payload["log_level"], "info")
		}
	})

	t.Run("returns set variables verbatim", func(t *testing.T) {
		t.Setenv(config.EnvTestEnv, "integration")
		t.Setenv(config.EnvDebug, "true")

		resp := reg.Invoke(context.Background(), "get_env_info", nil)
		if !resp.Success {
			t.Fatalf("unexpected failure: %s", resp.Err)
		}

		if resp.Payload["test_env"] != "integration" {
			t.Errorf("test_env = %v, want %q", resp.Payload["test_env"], "integration")
		}
		if resp.Payload["debug"] != "true" {
			t.Errorf("debug = %v, want %q", resp.Payload["debug"], "true")
		}
	})

	t.Run("never fails regardless of environment", func(t *testing.T) {
		t.Setenv(config.EnvDebug, "not-a-bool")

		resp := reg.Invoke(context.Background(), "get_env_info", nil)
		if !resp.Success {
			t.Errorf("unexpected failure: %s", resp.Err)
		}
	})
}

func TestServerInfo(t *testing.T) {
	reg := newTestRegistry(t)

	resp := reg.Invoke(context.Background(), "get_server_info", nil)
	if !resp.Success {
		t.Fatalf("unexpected failure: %s", resp.Err)
	}

	if resp.Payload["name"] != "hello-mcp" {
		t.Errorf("name = %v, want %q", resp.Payload["name"], "hello-mcp")
	}
	if resp.Payload["version"] != "1.0.0" {
		t.Errorf("version = %v, want %q", resp.Payload["version"], "1.0.0")
	}

	want := []string{"get_env_info", "get_server_info", "hello"}
	if got := resp.Payload["tools"]; !reflect.DeepEqual(got, want) {
		t.Errorf("tools = %v, want %v", got, want)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	reg := registry.New(registry.Info{Name: "hello-mcp", Version: "1.0.0"})
	if err := Register(reg); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := Register(reg); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}
