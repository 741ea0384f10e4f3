// Package content holds the static copy shown in the about, terms-of-use and
// privacy-policy dialogs, and the fixed labels of the main view.
package content

import (
	"fmt"

	"github.com/st-little/anshin-meshi/internal/buildinfo"
)

const (
	SiteName        = "アンシンめし"
	TableHeading    = "商品名 一覧"
	NoMatch         = "該当する商品がありません。"
	FetchFailed     = "データの取得に失敗しました。再読み込みをお試し下さい。"
	Loading         = "データを取得しています…"
	SearchHint      = "商品名を入力してください"
	DetailTitle     = "機能性表示評価成績"
	CloseLabel      = "閉じる"
	Credit          = "© 2020 st-little"
	TwitterURL      = "https://twitter.com/stlittle8"
	PrivacyPolicyGA = "https://policies.google.com/privacy"
)

// Block is one piece of body copy. Exactly one of the fields is set.
type Block struct {
	Heading   string
	Paragraph string
	Warning   string
	Ordered   []string
	Bullets   []string
	Terms     []Term
	Link      *Link
}

// Term is a definition-list entry.
type Term struct {
	Name    string
	Details []string
}

// Link is an outbound reference rendered after its paragraph text.
type Link struct {
	Before string
	Label  string
	URL    string
	After  string
}

// Document is the copy of one static dialog.
type Document struct {
	Title  string
	Blocks []Block
}

// About describes the site, how to use it and its credits.
func About() Document {
	return Document{
		Title: "このサイトについて",
		Blocks: []Block{
			{Heading: "目的"},
			{Paragraph: "このサイトは 「ASCON科学者委員会」 が公開している 機能性表示評価成績 を商品名から検索し閲覧することが目的です。"},
			{Warning: "このサイトは非公式のものであり、「ASCON科学者委員会」 とは一切関係ありません。"},
			{Heading: "使い方"},
			{Ordered: []string{
				"サイトを開いたらデータの取得が完了するのを待ちます。データの取得が完了すると商品名一覧が表示されます。",
				"商品名の検索窓に検索したい商品名を入力します。",
				"商品名一覧から商品名をタップすると機能性表示評価成績が表示されます。",
			}},
			{Heading: "サイト情報"},
			{Bullets: []string{
				"サイト名: " + SiteName,
				fmt.Sprintf("バージョン: %s", buildinfo.Version),
				"Repository: " + buildinfo.RepositoryURL,
				"クレジット: " + Credit,
			}},
			{Heading: "サードパーティクレジット"},
			{Terms: []Term{
				{Name: "機能性表示評価成績", Details: []string{"© ASCON科学者委員会", "http://ascon.bz/"}},
				{Name: "になロマン", Details: []string{"© 213ちゃん", "https://213chan.booth.pm/items/5570965"}},
			}},
			{Heading: "更新履歴"},
			{Paragraph: "0.1.0: ベータ版リリース"},
		},
	}
}

// TermsOfUse is the terms-of-use copy.
func TermsOfUse() Document {
	return Document{
		Title: "利用規約",
		Blocks: []Block{
			{Heading: "1. 受諾"},
			{Paragraph: "1.1 このウェブサービス（以下、「本サービス」といいます）を利用する場合、ユーザーは本利用規約に同意したものとみなされます。本サービスの利用は、本規約のすべての条件、および変更に同意することを含みます。"},
			{Heading: "2. 定義"},
			{Paragraph: "2.1 「本サービス」とは、本規約に基づき提供されるウェブサービスを指します。"},
			{Paragraph: "2.2 「ユーザー」とは、本サービスを利用する個人または法人を指します。"},
			{Heading: "3. サービスの提供"},
			{Paragraph: "3.1 ユーザーは、本サービスの提供にあたり、合理的な努力を行いますが、本サービスの中断、遅延、またはエラーが生じる可能性があることを理解し、同意します。"},
			{Paragraph: "3.2 ユーザーは、事前の通知なしに、本サービスの一部または全部を変更、中断、または終了する権利を留保します。"},
			{Heading: "4. 利用条件"},
			{Paragraph: "4.1 ユーザーは、本サービスを利用する際に、全ての適用される法律および規制を遵守する必要があります。"},
			{Paragraph: "4.2 ユーザーは、本サービスを不正に使用し、または他のユーザーの利用を妨害する行為を行ってはなりません。"},
			{Paragraph: "4.3 ユーザーは、本サービスを使用する際に、他のユーザーや本サービスの権利を侵害するような情報を提供してはなりません。"},
			{Heading: "5. 個人情報の取り扱い"},
			{Paragraph: "5.1 個人情報の収集、使用、および開示に関しては、個人情報保護方針が適用されます。"},
			{Heading: "6. 責任の制限"},
			{Paragraph: "6.1 当サービスの利用に関連して発生したいかなる損害についても、直接的、間接的、偶発的、特別、または重大な損害を含むがこれに限定されない、いかなる損害に対しても一切の責任を負いません。"},
			{Heading: "7. 準拠法と管轄裁判所"},
			{Paragraph: "7.1 本規約の解釈および適用は、日本法に従います。"},
			{Paragraph: "7.2 本規約に関連するいかなる紛争も、東京地方裁判所を第一審の専属的な管轄裁判所とします。"},
		},
	}
}

// PrivacyPolicy is the privacy-policy copy.
func PrivacyPolicy() Document {
	return Document{
		Title: "個人情報保護方針",
		Blocks: []Block{
			{Paragraph: "このウェブサイトは、Google Analytics を使用して、ウェブサイトのトラフィックとユーザーの行動に関する情報を収集しています。Google Analytics は Cookie を使用して、匿名の形式で情報を収集します。収集される情報には、ウェブサイトの利用者の IP アドレス、地理的位置、閲覧されたページ、利用されたブラウザやデバイスの種類などが含まれます。これらの情報は、個々のユーザーを特定するために使用されることはありません。"},
			{Paragraph: "このウェブサイトは、Google Analytics の機能によって提供されるデータを収集、解析、報告するためにこれらの情報を使用します。これには、ウェブサイトの改善や、ユーザーのニーズに合わせたコンテンツの提供などが含まれます。"},
			{Link: &Link{
				Before: "このウェブサイトを利用することにより、Google が収集したデータの処理に関して、Google の個人情報保護方針に同意したものとみなされます。Google の個人情報保護方針については、",
				Label:  "こちら",
				URL:    PrivacyPolicyGA,
				After:  "をご参照ください。",
			}},
			{Paragraph: "Cookie の使用に関する設定を変更したい場合は、ウェブブラウザの設定を変更して、Cookie の使用を管理することができます。ただし、Cookie の無効化または削除は、ウェブサイトの機能やサービスの一部を制限する可能性があります。"},
		},
	}
}
