// Command inspect dumps the badger keyspace as a table. Development
// tooling for poking at a server's data directory while it is stopped.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/protobuf/proto"

	pb "chat-hub/proto/storage"
)

func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	prefix := flag.String("prefix", "msg:", "Prefix to scan (msg:, room:, user:id:)")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Entity", "Created", "Owner", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			// Lookup keys carry no payload worth printing.
			if strings.HasPrefix(key, "msgid:") || strings.HasPrefix(key, "direct:") || strings.HasPrefix(key, "user:name:") {
				continue
			}

			err := item.Value(func(v []byte) error {
				table.Append(toRow(key, v))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Error while scanning: ", err)
	}

	table.Render()
}

func toRow(key string, val []byte) []string {
	switch {
	case strings.HasPrefix(key, "msg:"):
		var msg pb.Message
		if err := proto.Unmarshal(val, &msg); err != nil {
			return rawRow(key, val, err)
		}
		detail := msg.Content
		if len(detail) > 48 {
			detail = detail[:48] + "…"
		}
		if msg.Deleted {
			detail = "[deleted]"
		}
		return []string{key, "message", formatNano(msg.CreatedAt), msg.SenderId, detail}

	case strings.HasPrefix(key, "room:"):
		var room pb.Room
		if err := proto.Unmarshal(val, &room); err != nil {
			return rawRow(key, val, err)
		}
		detail := fmt.Sprintf("%s %q, %d member(s)", room.Type, room.Name, len(room.Members))
		return []string{key, "room", formatNano(room.CreatedAt), room.CreatorId, detail}

	case strings.HasPrefix(key, "user:id:"):
		var user pb.User
		if err := proto.Unmarshal(val, &user); err != nil {
			return rawRow(key, val, err)
		}
		detail := fmt.Sprintf("%s (%s), active=%t", user.Username, user.Status, user.Active)
		return []string{key, "user", formatNano(user.CreatedAt), user.Id, detail}
	}
	return rawRow(key, val, nil)
}

func rawRow(key string, val []byte, err error) []string {
	detail := fmt.Sprintf("%d bytes", len(val))
	if err != nil {
		detail = "unmarshal error: " + err.Error()
	}
	return []string{key, "raw", "--", "--", detail}
}

func formatNano(tsNano int64) string {
	if tsNano == 0 {
		return "--"
	}
	return time.Unix(0, tsNano).UTC().Format(time.RFC3339)
}
