package wallet

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "wallet.db")
	s := Open(dbPath, nil)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreIntRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if got := s.GetInt("0xabc", KeyHighScore, 42); got != 42 {
		t.Errorf("GetInt on empty store = %d, want default 42", got)
	}

	s.SetInt("0xabc", KeyHighScore, 1500)
	if got := s.GetInt("0xabc", KeyHighScore, 0); got != 1500 {
		t.Errorf("GetInt after SetInt = %d, want 1500", got)
	}
}

func TestStoreWalletIsolation(t *testing.T) {
	s := newTestStore(t)

	s.SetInt("0xaaa", KeyTotalCoins, 100)
	s.SetInt("0xbbb", KeyTotalCoins, 7)

	if got := s.GetInt("0xaaa", KeyTotalCoins, 0); got != 100 {
		t.Errorf("wallet A coins = %d, want 100", got)
	}
	if got := s.GetInt("0xbbb", KeyTotalCoins, 0); got != 7 {
		t.Errorf("wallet B coins = %d, want 7", got)
	}
}

func TestStoreEmptyWalletIsNoop(t *testing.T) {
	s := newTestStore(t)

	s.SetInt("", KeyHighScore, 999)
	if got := s.GetInt("", KeyHighScore, 3); got != 3 {
		t.Errorf("GetInt with empty wallet = %d, want default 3", got)
	}
	if keys := s.Keys("", ""); keys != nil {
		t.Errorf("Keys with empty wallet = %v, want nil", keys)
	}
	// The write above must not have landed under any physical key.
	if keys := s.rawKeys(""); len(keys) != 0 {
		t.Errorf("physical keys after empty-wallet write = %v, want none", keys)
	}
}

func TestStoreMalformedValueDegradesToDefault(t *testing.T) {
	s := newTestStore(t)

	s.setRaw(walletKey("0xabc", KeyHighScore), "not json")
	if got := s.GetInt("0xabc", KeyHighScore, 11); got != 11 {
		t.Errorf("GetInt on malformed value = %d, want default 11", got)
	}
	if got := s.GetBool("0xabc", KeyHighScore, true); got != true {
		t.Errorf("GetBool on malformed value = %v, want default true", got)
	}
}

func TestStoreBoolRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if got := s.GetBool("0xabc", "attendance-2026-08-28", false); got {
		t.Error("GetBool on empty store = true, want default false")
	}
	s.SetBool("0xabc", "attendance-2026-08-28", true)
	if got := s.GetBool("0xabc", "attendance-2026-08-28", false); !got {
		t.Error("GetBool after SetBool = false, want true")
	}
}

func TestStoreDelete(t *testing.T) {
	s := newTestStore(t)

	s.SetInt("0xabc", KeyTotalCoins, 50)
	s.Delete("0xabc", KeyTotalCoins)
	if got := s.GetInt("0xabc", KeyTotalCoins, -1); got != -1 {
		t.Errorf("GetInt after Delete = %d, want default -1", got)
	}
}

func TestStoreKeysStripNamespace(t *testing.T) {
	s := newTestStore(t)

	s.SetBool("0xabc", "attendance-2026-08-27", true)
	s.SetBool("0xabc", "attendance-2026-08-28", true)
	s.SetInt("0xabc", KeyHighScore, 10)
	s.SetBool("0xother", "attendance-2026-08-28", true)

	keys := s.Keys("0xabc", "attendance-")
	want := []string{"attendance-2026-08-27", "attendance-2026-08-28"}
	if len(keys) != len(want) {
		t.Fatalf("Keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "wallet.db")

	s := Open(dbPath, nil)
	s.SetInt("0xabc", KeyHighScore, 321)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2 := Open(dbPath, nil)
	defer s2.Close()
	if got := s2.GetInt("0xabc", KeyHighScore, 0); got != 321 {
		t.Errorf("GetInt after reopen = %d, want 321", got)
	}
}

func TestStoreMemoryFallback(t *testing.T) {
	// A store built over no durable medium still serves reads and writes.
	s := New(nil, nil)

	s.SetInt("0xabc", KeyTotalCoins, 25)
	if got := s.GetInt("0xabc", KeyTotalCoins, 0); got != 25 {
		t.Errorf("GetInt on memory-only store = %d, want 25", got)
	}
}

func TestMemoryMediumConcurrentAccess(t *testing.T) {
	m := NewMemoryMedium()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			m.Set("k", "v")
		}
	}()
	for i := 0; i < 100; i++ {
		m.Get("k")
		m.Keys("")
	}
	<-done
}
