package osint

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var hexRe = regexp.MustCompile(`^[0-9a-fA-F]+$`)

var hashTypesByLen = map[int][]string{
	32:  {"MD5", "MD4", "NTLM"},
	40:  {"SHA-1", "RIPEMD-160"},
	56:  {"SHA-224", "SHA3-224"},
	64:  {"SHA-256", "SHA3-256", "BLAKE2s"},
	96:  {"SHA-384", "SHA3-384"},
	128: {"SHA-512", "SHA3-512", "BLAKE2b", "Whirlpool"},
}

// HashLookup identifies the likely digest algorithm and links to public
// reverse-lookup databases. It never submits the hash anywhere itself.
func HashLookup() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		hash := strings.TrimSpace(args[0])

		var b strings.Builder
		b.WriteString(fmt.Sprintf("🔐 *Hash Analysis*\n\n`%s`\n\n", hash))

		switch {
		case strings.HasPrefix(hash, "$2a$"), strings.HasPrefix(hash, "$2b$"), strings.HasPrefix(hash, "$2y$"):
			b.WriteString("🧬 Type: `bcrypt`\n")
		case strings.HasPrefix(hash, "$argon2"):
			b.WriteString("🧬 Type: `Argon2`\n")
		case strings.HasPrefix(hash, "$6$"):
			b.WriteString("🧬 Type: `SHA-512 crypt`\n")
		case hexRe.MatchString(hash):
			candidates, ok := hashTypesByLen[len(hash)]
			if !ok {
				return "", fmt.Errorf("unrecognized hash length %d — expected a standard hex digest", len(hash))
			}
			b.WriteString(fmt.Sprintf("🧬 Likely type: `%s` (%d hex chars)\n", strings.Join(candidates, "` / `"), len(hash)))
		default:
			return "", fmt.Errorf("input does not look like a known hash format")
		}

		b.WriteString("\n🔍 *Reverse lookup databases:*\n")
		b.WriteString("  • https://crackstation.net/\n")
		b.WriteString("  • https://hashes.com/en/decrypt/hash\n")
		b.WriteString(fmt.Sprintf("  • https://www.virustotal.com/gui/search/%s\n", hash))
		return b.String(), nil
	}
}
