package domain

// Field describes the map a resolution happens on
type Field struct {
	MapID     int `json:"map_id"`
	MapType   int `json:"map_type"`
	Continent int `json:"continent"`
}

// Character is the requesting player's identity and class
type Character struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Job    JobCode `json:"job"`
	Gender Gender  `json:"gender"`
}

// QuestLog reports quest progress of a character
type QuestLog interface {
	IsQuestStarted(questID int) bool
}

// ActiveQuests is a QuestLog backed by a set of started quest ids
type ActiveQuests map[int]struct{}

// NewActiveQuests builds an ActiveQuests set
func NewActiveQuests(ids ...int) ActiveQuests {
	quests := make(ActiveQuests, len(ids))
	for _, id := range ids {
		quests[id] = struct{}{}
	}
	return quests
}

// IsQuestStarted implements QuestLog
func (q ActiveQuests) IsQuestStarted(questID int) bool {
	_, ok := q[questID]
	return ok
}

// Requester is the per-character context of an individual resolution
type Requester struct {
	Character Character
	Field     Field
	Quests    QuestLog
}

// HasStartedQuest reports whether the requester has the quest in progress
func (r Requester) HasStartedQuest(questID int) bool {
	if r.Quests == nil {
		return false
	}
	return r.Quests.IsQuestStarted(questID)
}
