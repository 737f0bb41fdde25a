package wallet

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Legacy physical key layouts predating wallet-scoped namespacing. These
// were written without a wallet prefix, so every wallet on the same machine
// shared them.
const (
	legacyAttendancePrefix = "gblend-attendance-"
	attendancePrefix       = "attendance-"
)

// datePattern validates the YYYY-MM-DD suffix of attendance keys.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// MigrationReport summarizes what MigrateLegacy did.
type MigrationReport struct {
	HighScoreMigrated  bool
	CoinsMigrated      bool
	AttendanceMigrated int
}

// MigrateLegacy folds legacy unscoped values into the wallet-scoped
// namespace for walletID. It is idempotent and safe to run on every session
// start:
//
//   - The legacy high score is merged by taking the maximum of the legacy
//     and the scoped value. The legacy key is kept so that other wallets on
//     the same machine can still claim it.
//   - The legacy coin total is added to the scoped total once, then the
//     legacy key is deleted so a rerun cannot double-count.
//   - Legacy attendance flags keyed gblend-attendance-<walletID>-YYYY-MM-DD
//     are copied to scoped attendance-YYYY-MM-DD booleans.
//
// Migration never decreases a stored numeric total. A no-op on empty
// walletID.
func (s *Store) MigrateLegacy(walletID string) MigrationReport {
	var report MigrationReport
	if walletID == "" {
		return report
	}

	report.HighScoreMigrated = s.migrateLegacyMax(walletID, KeyHighScore)
	report.CoinsMigrated = s.migrateLegacyAdd(walletID, KeyTotalCoins)
	report.AttendanceMigrated = s.migrateLegacyAttendance(walletID)

	if report.HighScoreMigrated || report.CoinsMigrated || report.AttendanceMigrated > 0 {
		s.logger.Info("migrated legacy wallet data",
			"wallet", walletID,
			"highScore", report.HighScoreMigrated,
			"coins", report.CoinsMigrated,
			"attendance", report.AttendanceMigrated)
	}
	return report
}

// migrateLegacyMax merges a legacy numeric key into the scoped key by
// maximum. The legacy key survives so other wallets can migrate it too.
func (s *Store) migrateLegacyMax(walletID, key string) bool {
	legacy, ok := s.legacyInt(key)
	if !ok {
		return false
	}
	current := s.GetInt(walletID, key, 0)
	if legacy <= current {
		return false
	}
	s.SetInt(walletID, key, legacy)
	return true
}

// migrateLegacyAdd folds a legacy numeric key into the scoped key
// additively, then deletes the legacy key so reruns cannot double-count.
func (s *Store) migrateLegacyAdd(walletID, key string) bool {
	legacy, ok := s.legacyInt(key)
	if !ok {
		return false
	}
	current := s.GetInt(walletID, key, 0)
	s.SetInt(walletID, key, current+legacy)
	s.deleteRaw(key)
	return true
}

// migrateLegacyAttendance copies per-wallet legacy attendance flags into the
// scoped namespace. Legacy attendance keys already carried the wallet
// identity in their name, so only this wallet's flags are touched.
func (s *Store) migrateLegacyAttendance(walletID string) int {
	legacyNS := legacyAttendancePrefix + walletID + "-"
	migrated := 0
	for _, k := range s.rawKeys(legacyNS) {
		date := strings.TrimPrefix(k, legacyNS)
		if !datePattern.MatchString(date) {
			continue
		}
		if s.GetBool(walletID, attendancePrefix+date, false) {
			continue
		}
		s.SetBool(walletID, attendancePrefix+date, true)
		migrated++
	}
	return migrated
}

// legacyInt reads an unscoped legacy integer value. Returns ok=false when
// absent or malformed.
func (s *Store) legacyInt(key string) (int, bool) {
	raw, ok := s.getRaw(key)
	if !ok {
		return 0, false
	}
	var v int
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.logger.Warn("malformed legacy value, skipping", "key", key, "error", err)
		return 0, false
	}
	return v, true
}
