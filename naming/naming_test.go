package naming_test

import (
	"testing"

	"github.com/stackplan/stackplan/naming"
)

func TestContext_ResourceName(t *testing.T) {
	tests := []struct {
		name       string
		ctx        naming.Context
		resource   string
		customName string
		want       string
	}{
		{
			name:     "Default",
			ctx:      naming.Context{Team: "devops", Service: "test-svc", Environment: "dev", Region: "us-east-1"},
			resource: "vpc-01",
			want:     "devops-test-svc-dev-use1-vpc-01",
		},
		{
			name:       "CustomName",
			ctx:        naming.Context{Team: "devops", Service: "test-svc", Environment: "dev", Region: "us-east-1"},
			resource:   "vpc-01",
			customName: "myinstance",
			want:       "myinstance",
		},
		{
			name:     "Lowercased",
			ctx:      naming.Context{Team: "DevOps", Service: "Billing", Environment: "Prod", Region: "eu-west-1"},
			resource: "queue",
			want:     "devops-billing-prod-euw1-queue",
		},
		{
			name:     "WhitespaceTrimmed",
			ctx:      naming.Context{Team: " devops ", Service: "svc", Environment: "dev", Region: "us-west-2"},
			resource: "db",
			want:     "devops-svc-dev-usw2-db",
		},
		{
			name:     "UnknownRegionFallback",
			ctx:      naming.Context{Team: "devops", Service: "svc", Environment: "dev", Region: "mars-west-1"},
			resource: "relay",
			want:     "devops-svc-dev-marswest1-relay",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.ctx.ResourceName(tc.resource, tc.customName)
			if got != tc.want {
				t.Errorf("ResourceName() got %q, want %q", got, tc.want)
			}
			// Pure function; a second call must return the same result.
			if again := tc.ctx.ResourceName(tc.resource, tc.customName); again != got {
				t.Errorf("ResourceName() not idempotent: %q != %q", again, got)
			}
		})
	}
}

func TestAbbreviation(t *testing.T) {
	tests := []struct {
		region string
		want   string
	}{
		{"us-east-1", "use1"},
		{"US-EAST-1", "use1"},
		{"cn-northwest-1", "cnnw1"},
		{"us-gov-west-1", "usgw1"},
		{"mars-west-1", "marswest1"},
		{"localzone", "localzone"},
	}
	for _, tc := range tests {
		if got := naming.Abbreviation(tc.region); got != tc.want {
			t.Errorf("Abbreviation(%q) got %q, want %q", tc.region, got, tc.want)
		}
	}
}
