package parameter

// Rank ladder bounds
const (
	MaxRank = 5
	MaxTier = 2
)

// Ledger rewards, pointsNeeded = RankBase + rank*RankScale + tier*TierScale
const (
	RankWinReward   = 3
	RankLossPenalty = 2

	RankBase  = 6
	RankScale = 4
	TierScale = 2
)

// RankRecordKey is the store key of the persisted rank record
const RankRecordKey = "rank"
