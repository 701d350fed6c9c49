package directory

import (
	"fmt"
	"strconv"
)

// Bot is a bot profile as listed on the directory. Numeric IDs arrive on the
// wire as decimal strings and are parsed to uint64; optional fields are nil
// when absent.
type Bot struct {
	ID               uint64
	Username         string
	Discriminator    string
	Avatar           *string
	DefAvatar        string
	Lib              string
	Prefix           string
	ShortDesc        string
	LongDesc         *string
	Tags             []string
	Website          *string
	Support          *string
	GitHub           *string
	Owners           []uint64
	Guilds           []uint64
	Invite           *string
	Date             string
	Certified        bool
	Vanity           *string
	Points           uint64
	MonthlyPoints    uint64
	DonateBotGuildID *uint64
}

// User is a directory user profile. Social links are looked up from the wire
// "social" map by fixed key; unknown keys are ignored.
type User struct {
	ID            uint64
	Username      string
	Discriminator string
	Avatar        *string
	DefAvatar     string
	Bio           *string
	Banner        *string
	YouTube       *string
	Reddit        *string
	Twitter       *string
	Instagram     *string
	GitHub        *string
	Color         *string
	Supporter     bool
	CertifiedDev  bool
	Moderator     bool
	WebModerator  bool
	Admin         bool
}

// PartialUser is the minimal user tuple the directory returns in vote lists.
type PartialUser struct {
	ID            uint64
	Username      string
	Discriminator string
	Avatar        *string
}

// BotStats is the server-count statistics block for a bot, decoded verbatim.
type BotStats struct {
	ServerCount *int  `json:"server_count"`
	Shards      []int `json:"shards"`
	ShardCount  *int  `json:"shard_count"`
}

// StatsUpdate is the body of a stats publish. Nil/empty fields are omitted
// from the JSON rather than sent as null. ShardID only makes sense together
// with ServerCount, marking which shard the count belongs to.
type StatsUpdate struct {
	ServerCount *int  `json:"server_count,omitempty"`
	Shards      []int `json:"shards,omitempty"`
	ShardID     *int  `json:"shard_id,omitempty"`
	ShardCount  *int  `json:"shard_count,omitempty"`
}

// botPayload mirrors the wire shape of GET /bots/{id}.
type botPayload struct {
	ID               string   `json:"id"`
	Username         string   `json:"username"`
	Discriminator    string   `json:"discriminator"`
	Avatar           *string  `json:"avatar"`
	DefAvatar        string   `json:"defAvatar"`
	Lib              string   `json:"lib"`
	Prefix           string   `json:"prefix"`
	ShortDesc        string   `json:"shortdesc"`
	LongDesc         *string  `json:"longdesc"`
	Tags             []string `json:"tags"`
	Website          *string  `json:"website"`
	Support          *string  `json:"support"`
	GitHub           *string  `json:"github"`
	Owners           []string `json:"owners"`
	Guilds           []string `json:"guilds"`
	Invite           *string  `json:"invite"`
	Date             string   `json:"date"`
	CertifiedBot     bool     `json:"certifiedBot"`
	Vanity           *string  `json:"vanity"`
	Points           uint64   `json:"points"`
	MonthlyPoints    uint64   `json:"monthlyPoints"`
	DonateBotGuildID string   `json:"donatebotguildid"`
}

func (p *botPayload) domain() (*Bot, error) {
	id, err := parseID(p.ID)
	if err != nil {
		return nil, fmt.Errorf("bot id %q: %w", p.ID, err)
	}
	owners, err := parseIDList(p.Owners)
	if err != nil {
		return nil, fmt.Errorf("bot owners: %w", err)
	}
	guilds, err := parseIDList(p.Guilds)
	if err != nil {
		return nil, fmt.Errorf("bot guilds: %w", err)
	}

	b := &Bot{
		ID:            id,
		Username:      p.Username,
		Discriminator: p.Discriminator,
		Avatar:        p.Avatar,
		DefAvatar:     p.DefAvatar,
		Lib:           p.Lib,
		Prefix:        p.Prefix,
		ShortDesc:     p.ShortDesc,
		LongDesc:      p.LongDesc,
		Tags:          p.Tags,
		Website:       p.Website,
		Support:       p.Support,
		GitHub:        p.GitHub,
		Owners:        owners,
		Guilds:        guilds,
		Invite:        p.Invite,
		Date:          p.Date,
		Certified:     p.CertifiedBot,
		Vanity:        p.Vanity,
		Points:        p.Points,
		MonthlyPoints: p.MonthlyPoints,
	}

	// A donation guild is optional and frequently holds junk like "". An
	// unparseable value degrades to absent instead of failing the call.
	if v, err := parseID(p.DonateBotGuildID); err == nil {
		b.DonateBotGuildID = &v
	}

	return b, nil
}

// userPayload mirrors the wire shape of GET /users/{id}.
type userPayload struct {
	ID            string            `json:"id"`
	Username      string            `json:"username"`
	Discriminator string            `json:"discriminator"`
	Avatar        *string           `json:"avatar"`
	DefAvatar     string            `json:"defAvatar"`
	Bio           *string           `json:"bio"`
	Banner        *string           `json:"banner"`
	Social        map[string]string `json:"social"`
	Color         *string           `json:"color"`
	Supporter     bool              `json:"supporter"`
	CertifiedDev  bool              `json:"certifiedDev"`
	Moderator     bool              `json:"mod"`
	WebModerator  bool              `json:"webMod"`
	Admin         bool              `json:"admin"`
}

func (p *userPayload) domain() (*User, error) {
	id, err := parseID(p.ID)
	if err != nil {
		return nil, fmt.Errorf("user id %q: %w", p.ID, err)
	}

	return &User{
		ID:            id,
		Username:      p.Username,
		Discriminator: p.Discriminator,
		Avatar:        p.Avatar,
		DefAvatar:     p.DefAvatar,
		Bio:           p.Bio,
		Banner:        p.Banner,
		YouTube:       socialLink(p.Social, "youtube"),
		Reddit:        socialLink(p.Social, "reddit"),
		Twitter:       socialLink(p.Social, "twitter"),
		Instagram:     socialLink(p.Social, "instagram"),
		GitHub:        socialLink(p.Social, "github"),
		Color:         p.Color,
		Supporter:     p.Supporter,
		CertifiedDev:  p.CertifiedDev,
		Moderator:     p.Moderator,
		WebModerator:  p.WebModerator,
		Admin:         p.Admin,
	}, nil
}

// partialUserPayload mirrors one element of GET /bots/{id}/votes.
type partialUserPayload struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Discriminator string  `json:"discriminator"`
	Avatar        *string `json:"avatar"`
}

func (p *partialUserPayload) domain() (*PartialUser, error) {
	id, err := parseID(p.ID)
	if err != nil {
		return nil, fmt.Errorf("voter id %q: %w", p.ID, err)
	}
	return &PartialUser{
		ID:            id,
		Username:      p.Username,
		Discriminator: p.Discriminator,
		Avatar:        p.Avatar,
	}, nil
}

// votedPayload mirrors GET /bots/{id}/check: 0 means not voted, anything
// else means voted.
type votedPayload struct {
	Voted int `json:"voted"`
}

func parseID(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func parseIDList(list []string) ([]uint64, error) {
	out := make([]uint64, 0, len(list))
	for _, s := range list {
		id, err := parseID(s)
		if err != nil {
			return nil, fmt.Errorf("id %q: %w", s, err)
		}
		out = append(out, id)
	}
	return out, nil
}

func socialLink(social map[string]string, key string) *string {
	if v, ok := social[key]; ok {
		return &v
	}
	return nil
}
