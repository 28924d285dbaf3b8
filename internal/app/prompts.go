package app

import (
	"fmt"

	"otasuke/internal/domain"
)

// Prompt building is pure string templating: identical requests always yield
// identical instruction text. User-supplied fields are interpolated directly;
// the templates carry a literal example of the JSON shape the model must emit.

type prompt struct {
	System string
	User   string
}

func flightPrompt(req domain.FlightSearchRequest) prompt {
	system := fmt.Sprintf(`あなたは高齢者向けの親切な旅行アドバイザーです。
以下のルールを守って回答してください：

1. 優しく、分かりやすい言葉で説明する
2. 難しい専門用語は使わない
3. 具体的な数字（料金・時間）を含める
4. 安全性と便利さを重視する
5. %sから空港へのアクセス情報を含める
6. %sの方に配慮した情報を提供する

必ず以下の項目を含めて回答してください：
- 一番安い航空会社と料金の目安
- おすすめの予約方法
- 安く買うコツ
- 地域情報（空港へのアクセス）
- 注意点`, req.UserLocation, req.AgeGroup)

	user := fmt.Sprintf(`%sの航空券について、%s、%sに出発する場合の情報を教えてください。

web_search機能を使って、最新の価格情報を検索してください。

以下のJSON形式で回答してください：
{
  "summary": {
    "lowestPrice": "8,850円くらい",
    "recommendedAirline": "スカイマーク",
    "bestTiming": "2週間前までに予約"
  },
  "advice": {
    "mainAdvice": "指宿から横浜への航空券についてお調べしました...",
    "tips": ["早めに予約するほど安い", "朝7-8時の便が安い"],
    "warnings": ["繁忙期（GW・夏休み・年末年始）は高い"],
    "localInfo": "指宿から鹿児島空港まで：バス約80分（1,500円）"
  }
}`, req.Route, req.Timing, req.TimeOfDay)

	return prompt{System: system, User: user}
}

// transportRadius maps the transport option to the distance-cap wording used
// in the goods templates. Anything but walking/cycling falls back to driving.
func transportRadius(transport string) string {
	switch transport {
	case "徒歩":
		return "徒歩で行ける範囲（半径500m以内）"
	case "自転車":
		return "自転車で行ける範囲（半径2-3km以内）"
	default:
		return "車で行ける範囲（制限なし）"
	}
}

func goodsPrompt(req domain.GoodsSearchRequest) prompt {
	radius := transportRadius(req.Transport)

	system := fmt.Sprintf(`あなたは高齢者向けの親切なお買い物アドバイザーです。
以下のルールを守って回答してください：

1. 優しく、分かりやすい言葉で説明する
2. 難しい専門用語は使わない
3. 具体的な商品名・価格・店舗を含める
4. %sから%sの店舗のみを検索
5. %sの方に配慮した情報を提供する
6. 優先条件は「%s」を最重視
7. 移動手段は「%s」なので、その範囲内の店舗のみ紹介

必ず以下の項目を含めて回答してください：
- おすすめの具体的な商品（メーカー・商品名・価格・内容量）
- 購入できる店舗（店名・距離・住所・価格・在庫状況）を最大3店舗
  ※必ず%sの店舗のみに絞ること
- お得なコツ
- 注意点`, req.UserLocation, radius, req.AgeGroup, req.Priority, req.Transport, radius)

	user := fmt.Sprintf(`%sを買いたいです。
優先条件：%s
現在地：%s
移動手段：%s（%s）

web_search機能を使って、%sから%sの店舗の最新の商品情報と店舗情報を検索してください。

重要：必ず%sの店舗のみを紹介してください。遠い店舗は含めないでください。

以下のJSON形式で回答してください：
{
  "recommendation": {
    "productName": "エリエール トイレットペーパー12ロール",
    "brand": "エリエール",
    "price": "498円",
    "quantity": "12ロール（ダブル）"
  },
  "stores": [
    {
      "name": "ドラッグストア マツモトキヨシ 指宿店",
      "distance": "自転車で5分（1.2km）",
      "address": "鹿児島県指宿市○○町1-2-3",
      "price": "498円",
      "availability": "在庫あり"
    }
  ],
  "advice": {
    "mainAdvice": "%sで%sをお探しですね。%sで行ける範囲で、%sという条件で、おすすめの商品と購入場所をお調べしました...",
    "tips": ["自転車で行ける範囲なので、重すぎないものがおすすめ", "天気の良い日に買い物すると安全"],
    "warnings": ["雨の日は無理せず、晴れの日に買い物しましょう"]
  }
}`,
		req.Product, req.Priority, req.UserLocation, req.Transport, radius,
		req.UserLocation, radius, radius,
		req.UserLocation, req.Product, req.Transport, req.Priority)

	return prompt{System: system, User: user}
}

func scriptPrompt(deal domain.Deal) prompt {
	system := `あなたは伝説的な通販プレゼンター（ジャパネットたかた風）です。
高齢者の方（お母様や義母様）に向けて、心躍るようなお得な商品の紹介スクリプトを作成してください。

以下のトーン＆マナーを守ってください：
1. 非常にハイテンションで、かつ親しみやすく。
2. 「エェ〜！」「信じられません！」「今だけ！」などの感嘆詞を効果的に使う。
3. 商品の良さだけでなく、それを使うことで生活がどう良くなるかを強調する。
4. 価格の安さを「驚き」として表現する。
5. 長くなりすぎず、30秒〜1分程度で読める分量にする。

出力は、Echo Showでの読み上げを想定したテキスト形式で返してください。`

	point := "特になし"
	if deal.RecommendationPoint != nil && *deal.RecommendationPoint != "" {
		point = *deal.RecommendationPoint
	}
	distance := "近く"
	if deal.Distance != nil && *deal.Distance != "" {
		distance = *deal.Distance
	}

	user := fmt.Sprintf(`
以下の商品の紹介スクリプトを作成してください：

商品名: %s
店舗名: %s
通常価格: %d円
特売価格: %d円
値引き額: %d円
おすすめポイント: %s
距離: %s
ユーザー: %s
`, deal.ProductName, deal.StoreName, deal.RegularPrice, deal.SalePrice,
		deal.RegularPrice-deal.SalePrice, point, distance, deal.UserID.Label())

	return prompt{System: system, User: user}
}
