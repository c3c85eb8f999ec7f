package slotcompliance

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

const (
	keyPrefix     = "nursery:compliance:slot:"
	versionPrefix = "nursery:compliance:version:"

	// versionTTL срок жизни счётчика версий, должен быть больше TTL записей
	versionTTL = 24 * time.Hour
)

// Entry закэшированный результат проверки соотношений для слота
type Entry struct {
	SlotID      string            `json:"slotId"`
	StaffCount  int               `json:"staffCount"`
	Counts      domain.ChildCount `json:"counts"`
	Result      cachedResult      `json:"result"`
	EvaluatedAt time.Time         `json:"evaluatedAt"`
}

type cachedResult struct {
	PFACompliant        bool                        `json:"pfaCompliant"`
	EYFSCompliant       bool                        `json:"eyfsCompliant"`
	Compliant           bool                        `json:"compliant"`
	MaxCapacity         map[domain.AgeBand]int      `json:"maxCapacity"`
	Available           map[domain.AgeBand]int      `json:"available"`
	QualificationIssues map[domain.AgeBand][]string `json:"qualificationIssues"`
}

// NewEntry собирает запись кэша из результата вычисления
func NewEntry(slotID string, staffCount int, counts domain.ChildCount, result domain.ComplianceResult, at time.Time) *Entry {
	return &Entry{
		SlotID:     slotID,
		StaffCount: staffCount,
		Counts:     counts,
		Result: cachedResult{
			PFACompliant:        result.PFACompliant,
			EYFSCompliant:       result.EYFSCompliant,
			Compliant:           result.Compliant,
			MaxCapacity:         result.MaxCapacity,
			Available:           result.Available,
			QualificationIssues: result.QualificationIssues,
		},
		EvaluatedAt: at,
	}
}

// ComplianceResult восстанавливает доменный результат
func (e *Entry) ComplianceResult() domain.ComplianceResult {
	result := domain.NewComplianceResult()
	result.PFACompliant = e.Result.PFACompliant
	result.EYFSCompliant = e.Result.EYFSCompliant
	result.Compliant = e.Result.Compliant
	for _, band := range domain.AllAgeBands {
		result.MaxCapacity[band] = e.Result.MaxCapacity[band]
		result.Available[band] = e.Result.Available[band]
		if issues := e.Result.QualificationIssues[band]; issues != nil {
			result.QualificationIssues[band] = issues
		}
	}
	return result
}

// Cache кэш результатов проверки соотношений по слотам
type Cache struct {
	kv  KVStore
	ttl time.Duration
}

// NewCache создает кэш с заданным TTL
func NewCache(kv KVStore, ttl time.Duration) *Cache {
	return &Cache{kv: kv, ttl: ttl}
}

// Key возвращает ключ Redis для слота
func Key(slotID string) string {
	return keyPrefix + slotID
}

// VersionKey возвращает ключ счётчика версий слота
func VersionKey(slotID string) string {
	return versionPrefix + slotID
}

// Version возвращает текущую версию слота, 0 если слот не инвалидировался
// Версию нужно прочитать до загрузки данных и передать в Set
func (c *Cache) Version(ctx context.Context, slotID string) (int64, error) {
	raw, err := c.kv.Get(ctx, VersionKey(slotID))
	if err != nil {
		if err == ErrCacheMiss {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: Version - slot %s: %v", ErrCacheRead, slotID, err)
	}

	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: Version - slot %s: %v", ErrCacheDecode, slotID, err)
	}

	return version, nil
}

// Get возвращает закэшированный результат или ErrCacheMiss
func (c *Cache) Get(ctx context.Context, slotID string) (*Entry, error) {
	raw, err := c.kv.Get(ctx, Key(slotID))
	if err != nil {
		if err == ErrCacheMiss {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("%w: Get - slot %s: %v", ErrCacheRead, slotID, err)
	}

	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, fmt.Errorf("%w: Get - slot %s: %v", ErrCacheDecode, slotID, err)
	}

	return &entry, nil
}

// Set сохраняет результат на время TTL
// Если после чтения version слот был инвалидирован, запись не сохраняется и возвращается ErrStaleEntry
func (c *Cache) Set(ctx context.Context, entry *Entry, version int64) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal slot %s: %v", ErrCacheWrite, entry.SlotID, err)
	}

	stored, err := c.kv.SetIfEqual(ctx, VersionKey(entry.SlotID), versionToken(version), Key(entry.SlotID), string(raw), c.ttl)
	if err != nil {
		return fmt.Errorf("%w: Set - slot %s: %v", ErrCacheWrite, entry.SlotID, err)
	}
	if !stored {
		return fmt.Errorf("%w: Set - slot %s version %d", ErrStaleEntry, entry.SlotID, version)
	}

	return nil
}

// Invalidate поднимает версию слотов и удаляет их результаты
// Версия поднимается до удаления записей
func (c *Cache) Invalidate(ctx context.Context, slotIDs ...string) error {
	if len(slotIDs) == 0 {
		return nil
	}

	for _, id := range slotIDs {
		if err := c.kv.Incr(ctx, VersionKey(id), versionTTL); err != nil {
			return fmt.Errorf("%w: Invalidate - bump version of slot %s: %v", ErrCacheWrite, id, err)
		}
	}

	keys := make([]string, 0, len(slotIDs))
	for _, id := range slotIDs {
		keys = append(keys, Key(id))
	}

	if err := c.kv.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("%w: Invalidate - slots %v: %v", ErrCacheWrite, slotIDs, err)
	}

	return nil
}

func versionToken(version int64) string {
	if version == 0 {
		return ""
	}
	return strconv.FormatInt(version, 10)
}
