package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/blockrelay/internal/reactor"
	"github.com/gabapcia/blockrelay/internal/relay"

	"github.com/ethereum/go-ethereum/common"
	redis "github.com/redis/go-redis/v9"
)

// ErrNoHeadRecorded is returned by LoadHead before any head was saved for a chain.
var ErrNoHeadRecorded = errors.New("no head recorded")

// headKey returns the hash key holding the head of chain:
//
//	"<namespace>:head:<chain>"
func headKey(namespace, chain string) string {
	return fmt.Sprintf("%s:head:%s", namespace, chain)
}

// saveHeadScript writes the head unless the stored number is higher.
// KEYS[1] is the head key, ARGV is number then hash. Returns 1 when written.
var saveHeadScript = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'number')
if current and tonumber(current) > tonumber(ARGV[1]) then
	return 0
end
redis.call('HSET', KEYS[1], 'number', ARGV[1], 'hash', ARGV[2])
return 1
`)

// SaveHead stores the head of chain as a hash with "number" and "hash" fields.
// The key never expires. A head lower than the stored one is ignored, so
// relays or tasks writing out of order never move it backwards.
func (c *client) SaveHead(ctx context.Context, chain string, number uint64, hash common.Hash) error {
	return saveHeadScript.Run(ctx, c.conn,
		[]string{headKey(c.namespace, chain)},
		strconv.FormatUint(number, 10),
		hash.Hex(),
	).Err()
}

// LoadHead returns the last head saved for chain. HGETALL on a missing key
// yields no fields, which is reported as ErrNoHeadRecorded.
func (c *client) LoadHead(ctx context.Context, chain string) (uint64, common.Hash, error) {
	fields, err := c.conn.HGetAll(ctx, headKey(c.namespace, chain)).Result()
	if err != nil {
		return 0, common.Hash{}, err
	}

	return parseHead(chain, fields)
}

func parseHead(chain string, fields map[string]string) (uint64, common.Hash, error) {
	if len(fields) == 0 {
		return 0, common.Hash{}, fmt.Errorf("%w for %s", ErrNoHeadRecorded, chain)
	}

	number, err := strconv.ParseUint(fields["number"], 10, 64)
	if err != nil {
		return 0, common.Hash{}, fmt.Errorf("parsing %s head number: %w", chain, err)
	}

	return number, common.HexToHash(fields["hash"]), nil
}

var (
	_ reactor.HeadStore = new(client)
	_ relay.HeadReader  = new(client)
)
