package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"nutrisnap/internal/domain/nutrition"
	"nutrisnap/internal/domain/onboarding"
)

type planOutput struct {
	HeightCm       float64        `json:"height_cm"`
	WeightKg       float64        `json:"weight_kg"`
	TargetWeightKg float64        `json:"target_weight_kg"`
	Goal           string         `json:"goal"`
	Plan           nutrition.Plan `json:"plan"`
}

// plan calcula el plan sin levantar el server; mismas reglas que el onboarding.
func newPlanCommand() *cobra.Command {
	var f onboarding.Form

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute daily calories and macros from biometrics",
		Example: `  nutrisnap-api plan --age 30 --height 175 --weight 70 --sex male --activity moderate --goal lose --target 65
  nutrisnap-api plan --unit imperial --age 28 --feet 5 --inches 6 --weight 140 --sex female --activity light --goal maintain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := onboarding.Normalize(f)
			if err != nil {
				return err
			}

			out := planOutput{
				HeightCm:       in.Biometrics.HeightCm,
				WeightKg:       in.Biometrics.WeightKg,
				TargetWeightKg: in.TargetWeightKg,
				Goal:           nutrition.GoalDescription(in.Goal),
				Plan:           nutrition.ComputePlan(in.Biometrics, in.ActivityLevel, in.Goal),
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.Unit, "unit", "metric", "metric or imperial")
	fl.StringVar(&f.Age, "age", "", "age in years")
	fl.StringVar(&f.Height, "height", "", "height in cm (metric)")
	fl.StringVar(&f.HeightFeet, "feet", "", "height feet (imperial)")
	fl.StringVar(&f.HeightInches, "inches", "", "height inches (imperial)")
	fl.StringVar(&f.Weight, "weight", "", "weight in kg or lbs")
	fl.StringVar(&f.Sex, "sex", "", "male, female or other")
	fl.StringVar(&f.ActivityLevel, "activity", "", "sedentary, light, moderate, active or very_active")
	fl.StringVar(&f.Goal, "goal", "maintain", "lose, maintain or gain")
	fl.StringVar(&f.TargetWeight, "target", "", "target weight (required unless goal is maintain)")

	return cmd
}
