package db_models

// KVEntry is one row of the key-value substrate.
type KVEntry struct {
	Key       string `gorm:"column:key;primaryKey;size:512"`
	Value     string `gorm:"column:value;type:text;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"`
}

func (KVEntry) TableName() string { return "kv_store" }
