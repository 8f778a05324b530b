/*
Copyright © 2026 masteryyh <yyh991013@163.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package models

import "github.com/masteryyh/promoadmin/pkg/consts"

type NextStep string

const (
	NextStepPicture NextStep = "picture"
	NextStepPrices  NextStep = "prices"
	NextStepReady   NextStep = "ready"
)

// Promotion is the admin view of a promotion in the promotions service.
type Promotion struct {
	Slug         string `json:"slug"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Step         int    `json:"step"`
	Approved     bool   `json:"approved"`
	DisplayImage any    `json:"displayImage,omitempty"`
}

func NextStepOf(step int) NextStep {
	switch step {
	case consts.PromotionStepPicture:
		return NextStepPicture
	case consts.PromotionStepPrices:
		return NextStepPrices
	default:
		return NextStepReady
	}
}

func (p *Promotion) ToDto() *PromotionDto {
	return &PromotionDto{
		Slug:         p.Slug,
		Title:        p.Title,
		Description:  p.Description,
		Step:         p.Step,
		NextStep:     NextStepOf(p.Step),
		Approved:     p.Approved,
		DisplayImage: p.DisplayImage,
	}
}

type PromotionDto struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Step         int      `json:"step"`
	NextStep     NextStep `json:"nextStep"`
	Approved     bool     `json:"approved"`
	DisplayImage any      `json:"displayImage,omitempty"`
}

type ApprovalDto struct {
	Approved bool `json:"approved"`
}

type StepDto struct {
	Step int `json:"step"`
}
