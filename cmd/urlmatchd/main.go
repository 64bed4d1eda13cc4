// Command urlmatchd is a small demo front-end for urlmatch: it loads a set
// of patterns and serves a single endpoint that reports which one, if any,
// matches a given URL. It exists to exercise the index end-to-end over real
// network transport, the way the teacher's own zeno.go wired its router
// into fasthttp.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/reuseport"

	"github.com/briarwood-dev/urlmatch"
)

type matchResponse struct {
	Matched  bool              `json:"matched"`
	Pathname string            `json:"pathname,omitempty"`
	Captures map[string]string `json:"captures,omitempty"`
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	reuse := flag.Bool("reuseport", false, "use SO_REUSEPORT")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	idx := buildDemoIndex(logger)

	handler := func(ctx *fasthttp.RequestCtx) {
		raw := string(ctx.QueryArgs().Peek("url"))
		if raw == "" {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			ctx.SetBodyString(`{"error":"missing url query parameter"}`)
			return
		}

		resp := matchResponse{}
		if result, ok := idx.Match(raw); ok {
			resp.Matched = true
			resp.Pathname = result.Pattern.Pathname
			resp.Captures = make(map[string]string, len(result.Output.Captures))
			for _, c := range result.Output.Captures {
				resp.Captures[c.Name] = c.Value
			}
		}

		body, err := sonic.Marshal(resp)
		if err != nil {
			ctx.SetStatusCode(fasthttp.StatusInternalServerError)
			return
		}
		ctx.SetContentType("application/json")
		ctx.SetBody(body)
	}

	logger.Info("urlmatchd listening", slog.String("addr", *addr))

	var err error
	if *reuse {
		listener, lerr := reuseport.Listen("tcp4", *addr)
		if lerr != nil {
			logger.Error("reuseport listen failed", slog.Any("err", lerr))
			os.Exit(1)
		}
		err = fasthttp.Serve(listener, handler)
	} else {
		err = fasthttp.ListenAndServe(*addr, handler)
	}
	if err != nil {
		logger.Error("urlmatchd exited", slog.Any("err", err))
		os.Exit(1)
	}
}

// buildDemoIndex registers a handful of overlapping patterns so that
// registration-order precedence is visible over the wire: /books/:id is
// added before the more specific /books/featured, so a request for
// "/books/featured" is expected to hit the *first* pattern, exactly as §3's
// "first write wins" rule specifies.
func buildDemoIndex(logger *slog.Logger) *urlmatch.Index {
	idx := urlmatch.New(urlmatch.WithLogger(logger))

	must := func(pattern string, payload string) {
		if err := idx.AddString(pattern, payload, "https://example.com"); err != nil {
			logger.Error("failed to register demo pattern", slog.String("pattern", pattern), slog.Any("err", err))
		}
	}

	must("/books/:id", "book-by-id")
	must("/books/featured", "featured-books")
	must("/books/*", "books-catch-all")
	must("/users/:id/orders/:orderId", "user-order")

	return idx
}
