package shared

import (
	"fmt"
	"net/url"
	"strings"
)

// IdBuilder derives the identifiers and endpoint URLs we talk to: AT-URIs for
// records, and the Jetstream subscribe URL with the filter baked into the
// query string.
type IdBuilder struct {
	JetstreamHost string
}

// AtUri composes the canonical address of a record: author + collection + key.
func AtUri(did, collection, rkey string) string {
	return fmt.Sprintf("at://%s/%s/%s", did, collection, rkey)
}

// Subscribe builds the wss:// endpoint encoding the wanted collections and,
// when non-empty, the author allow-list. A host that already carries a scheme
// is used as-is.
func (idb *IdBuilder) Subscribe(collections, dids []string) string {
	vals := url.Values{}
	for _, coll := range collections {
		vals.Add("wantedCollections", coll)
	}
	for _, did := range dids {
		vals.Add("wantedDids", did)
	}
	base := idb.JetstreamHost
	if !strings.Contains(base, "://") {
		base = "wss://" + base
	}
	res := base + "/subscribe"
	if len(vals) != 0 {
		res += "?" + vals.Encode()
	}
	return res
}

// XrpcUrl is the endpoint of a single XRPC query or procedure on a host.
func XrpcUrl(host, nsid string) string {
	host = strings.TrimSuffix(host, "/")
	return fmt.Sprintf("%s/xrpc/%s", host, nsid)
}
