package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fwojciec/jobscrape"
	"github.com/fwojciec/jobscrape/fs"
)

// printListing writes the listing to w in the given format.
func printListing(w io.Writer, listing *jobscrape.Listing, format string) error {
	switch format {
	case "table":
		return printTable(w, listing.Jobs)
	case "json", "":
		data, err := fs.MarshalListing(listing)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return jobscrape.Errorf(jobscrape.EINVALID, "unknown format %q", format)
	}
}

// printTable writes one aligned row per job.
func printTable(w io.Writer, jobs []*jobscrape.Job) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCOMPANY\tTYPE\tLOCATION\tMODALITY\tREMOTE\tPUBLISHED\tSALARY")
	for _, j := range jobs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			j.ID, j.Title, j.Company, j.JobType, j.Location, j.Modality,
			jobscrape.YesNo(j.Remote), j.PublishedAt, j.Salary)
	}
	return tw.Flush()
}
