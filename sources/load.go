package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/woof/logs"
	"github.com/reusee/woof/nets"
	"github.com/reusee/woof/wooflang"
)

// Load resolves a command-line argument to a named source: "-" reads stdin,
// http(s) URLs are fetched, anything else is a file path. The parser itself
// never touches I/O; this is its only collaborator.
type Load func(ctx context.Context, arg string) (*wooflang.Source, error)

func (Module) Load(
	client nets.HTTPClient,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, arg string) (*wooflang.Source, error) {

		if arg == "-" {
			content, err := io.ReadAll(os.Stdin)
			if err != nil {
				return nil, err
			}
			return wooflang.NewSource("stdin", string(content)), nil
		}

		if strings.HasPrefix(arg, "http://") ||
			strings.HasPrefix(arg, "https://") {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, arg, nil)
			if err != nil {
				return nil, err
			}
			resp, err := client.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return nil, fmt.Errorf("fetch %s: %s", arg, resp.Status)
			}
			content, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			logger.InfoContext(ctx, "fetch source",
				"url", arg,
				"len", len(content),
			)
			return wooflang.NewSource(arg, string(content)), nil
		}

		content, err := os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		return wooflang.NewSource(arg, string(content)), nil
	}
}
