package rates

// Rate keys accepted by Set
const (
	KeyGlobal = "global"
	KeyBoss   = "boss"
	KeyRare   = "rare"
	KeyMesos  = "mesos"
)

// Keys lists every settable rate key in display order
var Keys = []string{KeyGlobal, KeyBoss, KeyRare, KeyMesos}

// Log messages
const (
	LogMsgRateChanged = "Loot rate changed (runtime only)"
)
