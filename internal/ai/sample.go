// README: Canned marker-wrapped response used when the real API is unavailable.
package ai

// SampleRawResponse mimics a well-behaved model reply. The planner falls back
// to it when the provider errors so the pipeline stays demonstrable without a
// working API key, and the extract-demo binary uses it as default input.
const SampleRawResponse = `===JSON_START===
{
  "destination_name": "Mathura, India",
  "maps_query": "Mathura,India",
  "itinerary": [
    { "day_number": 1, "summary": "Arrival and Janmabhoomi", "activities": ["Visit Shri Krishna Janmabhoomi", "Evening aarti"], "approximate_cost": 500 },
    { "day_number": 2, "summary": "Vrindavan temples", "activities": ["Banke Bihari Temple", "Prem Mandir"], "approximate_cost": 700 }
  ],
  "visit_sequence": [
    { "order": 1, "location_name": "Shri Krishna Janmabhoomi", "suggested_time": "Morning", "estimated_duration": "2 hours",
      "note": "Start early", "latitude": 27.4921, "longitude": 77.6745,
      "nearby_food_recommendations": [{"name": "Brijwasi Sweets", "rating": 4.2, "distance_m": 300, "price_level": "$", "reason": "Famous for pedas"}]
    },
    { "order": 2, "location_name": "Banke Bihari Temple (Vrindavan)", "suggested_time": "Morning", "estimated_duration": "2 hours",
      "note": "Crowded, come early", "latitude": 27.5807, "longitude": 77.7061,
      "nearby_food_recommendations": [{"name": "Local stalls", "rating": 3.8, "distance_m": 100, "price_level": "$", "reason": "Street snacks"}]
    }
  ],
  "popular_dinner_recommendations": [{"name": "Brijwasi Sweets", "reason": "Local sweets", "rating": 4.2, "price_level": "$"}],
  "popular_stays": [{"name": "Hotel Madhuvan", "reason": "Comfortable near temples", "rating": 4.0, "price_level": "$$"}],
  "travel_instructions": [
    {"from": "Your origin", "to": "Mathura Junction", "transport": "Train/car", "approx_time": "Varies", "notes": "From Mathura Junction take a rickshaw to Janmabhoomi (~10-20 min)"}
  ]
}
===JSON_END===`
