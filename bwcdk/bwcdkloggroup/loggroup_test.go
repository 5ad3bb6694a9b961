//nolint:paralleltest // jsii runtime doesn't support parallel tests
package bwcdkloggroup_test

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslogs"
	"github.com/aws/jsii-runtime-go"
	"github.com/basewarphq/bwsite/bwcdk/bwcdkloggroup"
)

func TestNew_CreatesLogGroup(t *testing.T) {
	defer jsii.Close()

	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)

	lg := bwcdkloggroup.New(stack, "TestLogs", bwcdkloggroup.Props{
		Purpose: jsii.String("test logs"),
	})

	if lg.LogGroup() == nil {
		t.Error("LogGroup() should not be nil")
	}
}

func TestNew_DefaultRetentionWithoutOutput(t *testing.T) {
	defer jsii.Close()

	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)

	bwcdkloggroup.New(stack, "DeployLogs", bwcdkloggroup.Props{
		Purpose: jsii.String("site content deployment"),
	})

	tmpl := synthTemplate(t, app, "TestStack")

	groups := resourcesOfType(tmpl, "AWS::Logs::LogGroup")
	if len(groups) != 1 {
		t.Fatalf("expected 1 log group, got %d", len(groups))
	}
	props, _ := groups[0]["Properties"].(map[string]any)
	if got, _ := props["RetentionInDays"].(float64); got != 7 {
		t.Errorf("RetentionInDays = %v, want 7", props["RetentionInDays"])
	}
	if groups[0]["DeletionPolicy"] != "Delete" {
		t.Errorf("DeletionPolicy = %v, want Delete", groups[0]["DeletionPolicy"])
	}

	if outputs, ok := tmpl["Outputs"].(map[string]any); ok {
		for key, val := range outputs {
			if extractDescription(val) == "CloudWatch Log Group for site content deployment" {
				t.Errorf("unexpected output %q without WithOutput", key)
			}
		}
	}
}

func TestNew_CustomRetention(t *testing.T) {
	defer jsii.Close()

	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)

	bwcdkloggroup.New(stack, "DeployLogs", bwcdkloggroup.Props{
		Purpose:   jsii.String("site content deployment"),
		Retention: awslogs.RetentionDays_THREE_DAYS,
	})

	tmpl := synthTemplate(t, app, "TestStack")

	groups := resourcesOfType(tmpl, "AWS::Logs::LogGroup")
	if len(groups) != 1 {
		t.Fatalf("expected 1 log group, got %d", len(groups))
	}
	props, _ := groups[0]["Properties"].(map[string]any)
	if got, _ := props["RetentionInDays"].(float64); got != 3 {
		t.Errorf("RetentionInDays = %v, want 3", props["RetentionInDays"])
	}
}

func TestNew_CreatesOutput(t *testing.T) {
	defer jsii.Close()

	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), nil)

	bwcdkloggroup.New(stack, "FirstLogs", bwcdkloggroup.Props{
		Purpose:    jsii.String("first purpose"),
		WithOutput: true,
	})
	bwcdkloggroup.New(stack, "SecondLogs", bwcdkloggroup.Props{
		Purpose:    jsii.String("second purpose"),
		WithOutput: true,
	})

	tmpl := synthTemplate(t, app, "TestStack")

	outputs, ok := tmpl["Outputs"].(map[string]any)
	if !ok {
		t.Fatal("template should have Outputs")
	}

	if _, ok := outputs["FirstLogsLogGroup"]; !ok {
		t.Errorf("template should have output FirstLogsLogGroup, got outputs: %v", outputs)
	}

	foundFirst := false
	foundSecond := false
	for _, val := range outputs {
		desc := extractDescription(val)
		if desc == "CloudWatch Log Group for first purpose" {
			foundFirst = true
		}
		if desc == "CloudWatch Log Group for second purpose" {
			foundSecond = true
		}
	}
	if !foundFirst {
		t.Error("template should have output for first purpose")
	}
	if !foundSecond {
		t.Error("template should have output for second purpose")
	}
}

func synthTemplate(t *testing.T, app awscdk.App, stackName string) map[string]any {
	t.Helper()

	template := app.Synth(nil).GetStackByName(jsii.String(stackName)).Template()

	templateJSON, err := json.Marshal(template)
	if err != nil {
		t.Fatalf("failed to marshal template: %v", err)
	}

	var tmpl map[string]any
	if err := json.Unmarshal(templateJSON, &tmpl); err != nil {
		t.Fatalf("failed to unmarshal template: %v", err)
	}
	return tmpl
}

func resourcesOfType(tmpl map[string]any, typ string) []map[string]any {
	resources, _ := tmpl["Resources"].(map[string]any)
	var found []map[string]any
	for _, val := range resources {
		m, ok := val.(map[string]any)
		if !ok {
			continue
		}
		if m["Type"] == typ {
			found = append(found, m)
		}
	}
	return found
}

func extractDescription(val any) string {
	m, ok := val.(map[string]any)
	if !ok {
		return ""
	}
	desc, ok := m["Description"].(string)
	if !ok {
		return ""
	}
	return desc
}
