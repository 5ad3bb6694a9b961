package bwsite_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/basewarphq/bwsite/bwsite"
	"pgregory.net/rapid"
)

func genDomain() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		labels := rapid.SliceOfN(rapid.StringMatching(`[a-z][a-z0-9]{0,7}`), 1, 2).Draw(t, "labels")
		tld := rapid.StringMatching(`[a-z]{2,6}`).Draw(t, "tld")
		return strings.Join(append(labels, tld), ".")
	})
}

func genRegion() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{"us-east-1", "eu-west-1", "eu-central-1", "ap-southeast-2"})
}

func TestPlanProperty_DerivedNames(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		domain := genDomain().Draw(t, "domain")
		region := genRegion().Draw(t, "region")
		account := rapid.StringMatching(`[0-9]{12}`).Draw(t, "account")

		topo, err := bwsite.Plan(bwsite.Config{
			DomainName: domain,
			Region:     region,
			Account:    account,
		})
		if err != nil {
			t.Fatalf("Plan(%q): %v", domain, err)
		}

		if !slices.Equal(topo.Certificate.SubjectAlternativeNames, []string{"www." + domain}) {
			t.Fatalf("SANs = %v, want [www.%s]", topo.Certificate.SubjectAlternativeNames, domain)
		}
		if want := domain + "-" + region + "-" + account; topo.Bucket.Name != want {
			t.Fatalf("Bucket.Name = %q, want %q", topo.Bucket.Name, want)
		}
		if topo.Output.Value != "https://"+domain {
			t.Fatalf("Output.Value = %q", topo.Output.Value)
		}
		if topo.WWWRecord.Target != bwsite.AliasApexRecord {
			t.Fatalf("WWWRecord.Target = %s", topo.WWWRecord.Target)
		}
		if !topo.ServesBothNames() {
			t.Fatal("apex and www must resolve to the same distribution")
		}
	})
}

func TestPlanProperty_EmptyDomainAlwaysFails(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		blank := rapid.StringMatching(`[ \t]{0,4}`).Draw(t, "blank")

		_, err := bwsite.Plan(bwsite.Config{
			DomainName: blank,
			Region:     genRegion().Draw(t, "region"),
			Account:    "123456789012",
		})
		if err == nil {
			t.Fatalf("Plan(%q) should fail", blank)
		}
	})
}
