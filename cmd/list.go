package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"github.com/freejk/campscope/internal/utils"
	"github.com/freejk/campscope/pkg/records"
	"github.com/freejk/campscope/pkg/storage"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Load the directory and print the filtered records",
	RunE: func(cmd *cobra.Command, args []string) error {
		market, _ := cmd.Flags().GetString("market")
		contacted, _ := cmd.Flags().GetString("contacted")
		outputFlags, _ := cmd.Flags().GetString("output")
		delimiter, _ := cmd.Flags().GetString("delimiter")
		domainsOnly, _ := cmd.Flags().GetBool("domains")
		describe, _ := cmd.Flags().GetBool("describe")
		dbPath, _ := cmd.Flags().GetString("dbpath")

		if !records.ValidContactFilter(contacted) {
			return fmt.Errorf("invalid --contacted value %q (want any, contacted or not-contacted)", contacted)
		}

		loader, err := newLoader()
		if err != nil {
			return err
		}

		ctx := context.Background()
		dataset, err := loader.Load(ctx)
		if err != nil {
			return err
		}

		path, err := resolveDBPath(dbPath)
		if err != nil {
			return err
		}
		store, err := storage.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()

		contactedMap, err := store.ContactedMap(ctx)
		if err != nil {
			return err
		}

		matched := dataset.Filter(market, records.ContactFilter(contacted), func(id string) bool {
			_, ok := contactedMap[id]
			return ok
		})

		if describe {
			printCampaignDescription(dataset.Campaign)
		}

		if domainsOnly {
			printDomains(matched)
			return nil
		}

		printRecords(matched, outputFlags, delimiter, contactedMap)
		return nil
	},
}

// printRecords prints one line per record, with the fields selected by
// the output flag string, joined by the delimiter.
func printRecords(recs []records.Record, outputFlags, delimiter string, contactedMap map[string]int64) {
	lines := ""
	for _, rec := range recs {
		var line string
		for _, f := range outputFlags {
			switch f {
			case 'n':
				line += rec.CompanyName + delimiter
			case 'm':
				line += rec.Market + delimiter
			case 'u':
				line += utils.NormalizeURL(rec.URL) + delimiter
			case 'e':
				line += rec.ContactEmail + delimiter
			case 'p':
				line += rec.ContactPhone + delimiter
			case 'c':
				line += rec.ContactURL + delimiter
			case 'o':
				line += rec.ObservedOn + delimiter
			case 's':
				line += rec.ObservedSourceURL + delimiter
			case 'i':
				line += rec.Identifier + delimiter
			case 'x':
				if _, ok := contactedMap[rec.Identifier]; ok {
					line += "contacted" + delimiter
				} else {
					line += "not-contacted" + delimiter
				}
			default:
				utils.Log.Fatal("Invalid print flag")
			}
		}
		line = strings.TrimSuffix(line, delimiter)
		if len(line) > 0 {
			lines += line + "\n"
		}
	}

	lines = strings.TrimSuffix(lines, "\n")

	if len(lines) > 0 {
		fmt.Println(lines)
	}
}

func printDomains(recs []records.Record) {
	seen := make(map[string]bool)
	var domains []string
	for _, rec := range recs {
		d := utils.RegistrableDomain(rec.URL)
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		domains = append(domains, d)
	}
	sort.Strings(domains)
	for _, d := range domains {
		fmt.Println(d)
	}
}

func printCampaignDescription(campaign records.Campaign) {
	fmt.Println(campaign.Name)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(campaign.DescriptionHTML))
	if err != nil {
		fmt.Println(campaign.DescriptionHTML)
		fmt.Println()
		return
	}
	if text := strings.TrimSpace(doc.Text()); text != "" {
		fmt.Println(text)
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("market", "m", "", "Only show records for this market")
	listCmd.Flags().StringP("contacted", "c", "any", "Contact-status filter (any, contacted, not-contacted)")
	listCmd.Flags().StringP("output", "o", "nm", "Output flags: n=name m=market u=url e=email p=phone c=contact-url o=observed-on s=source-url i=identifier x=contact-status")
	listCmd.Flags().StringP("delimiter", "d", " ", "Delimiter between output fields")
	listCmd.Flags().Bool("domains", false, "Print distinct registrable domains of the matched records instead")
	listCmd.Flags().Bool("describe", false, "Print the campaign description before the records")
	listCmd.Flags().String("dbpath", "", "Path to the contact-status database")
}
